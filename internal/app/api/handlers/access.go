package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renascerfit/coach/internal/app/api/middleware"
	"github.com/renascerfit/coach/internal/app/service/entitlement"
	"github.com/renascerfit/coach/internal/app/service/guard"
	"github.com/renascerfit/coach/pkg/response"
)

// @Summary      Guard decision
// @Description  Evaluates whether the caller may enter an area or must be redirected. Fails with a 500-level envelope when a lookup fails so the client keeps its loading state.
// @Tags         Access
// @Produce      json
// @Param        area query string true "Protected area" Enums(app, admin, member)
// @Success      200  {object}  response.APIResponse[guard.Decision]
// @Router       /api/v1/access/decision [get]
func ApiGuardDecision(g *guard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		area, err := guard.ParseArea(c.Query("area"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		decision, err := g.Evaluate(c.Request.Context(), middleware.SessionFrom(c), area)
		if err != nil {
			// Never default to an access level on lookup failure.
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, "access check unavailable"))
			return
		}
		c.JSON(http.StatusOK, response.OKT(decision))
	}
}

// @Summary      Entitlement
// @Description  Resolves the caller's effective access level from role and subscription history.
// @Tags         Access
// @Produce      json
// @Success      200  {object}  response.APIResponse[entitlement.Resolution]
// @Router       /api/v1/access/entitlement [get]
func ApiEntitlement(ent *entitlement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}
		res, err := ent.ResolveUser(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, "access check unavailable"))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAccessRoutes(r gin.IRouter, g *guard.Service, ent *entitlement.Service) {
	r.GET("/access/decision", ApiGuardDecision(g))
	r.GET("/access/entitlement", ApiEntitlement(ent))
}
