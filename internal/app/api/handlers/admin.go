package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renascerfit/coach/internal/app/api/middleware"
	"github.com/renascerfit/coach/internal/app/service/billing"
	"github.com/renascerfit/coach/pkg/response"
	"github.com/renascerfit/coach/pkg/types"
)

type SetBlockedRequest struct {
	UserID string `json:"user_id"`
}

// @Summary      Block user (Admin)
// @Description  Denies all member access for a user until unblocked.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.SetBlockedRequest true "Target user"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/admin/block_user [post]
func ApiBlockUser(svc *billing.Service) gin.HandlerFunc {
	return setBlockedHandler(svc, true)
}

// @Summary      Unblock user (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.SetBlockedRequest true "Target user"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/admin/unblock_user [post]
func ApiUnblockUser(svc *billing.Service) gin.HandlerFunc {
	return setBlockedHandler(svc, false)
}

func setBlockedHandler(svc *billing.Service, blocked bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetBlockedRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "missing user_id"))
			return
		}
		operator := middleware.SessionFrom(c)
		if err := svc.SetUserBlocked(c.Request.Context(), req.UserID, operator.UserID, blocked); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

type GrantPlanRequest struct {
	UserID   string         `json:"user_id"`
	PlanType types.PlanType `json:"plan_type"`
}

// @Summary      Grant plan (Admin)
// @Description  Grants a plan period without payment.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.GrantPlanRequest true "Grant request"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/admin/grant_plan [post]
func ApiGrantPlan(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GrantPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.UserID == "" || req.PlanType == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "missing user_id or plan_type"))
			return
		}
		operator := middleware.SessionFrom(c)
		if err := svc.GrantPlan(c.Request.Context(), req.UserID, req.PlanType, operator.UserID); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      List subscriptions (Admin)
// @Description  Paginated, filterable list of subscription rows.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body billing.ScanSubscriptionsRequest true "Filters, pagination, sorting"
// @Success      200  {object}  response.APIResponse[billing.ScanSubscriptionsResult]
// @Router       /api/v1/admin/list_subscriptions [post]
func ApiListSubscriptions(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req billing.ScanSubscriptionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.ScanSubscriptions(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Plan statistics (Admin)
// @Description  Active subscriber counts and normalized monthly revenue per plan.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]billing.PlanStatistic]
// @Router       /api/v1/admin/plan_statistics [post]
func ApiPlanStatistics(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.PlanStatistics(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, svc *billing.Service) {
	r.POST("/block_user", ApiBlockUser(svc))
	r.POST("/unblock_user", ApiUnblockUser(svc))
	r.POST("/grant_plan", ApiGrantPlan(svc))
	r.POST("/list_subscriptions", ApiListSubscriptions(svc))
	r.POST("/plan_statistics", ApiPlanStatistics(svc))
}
