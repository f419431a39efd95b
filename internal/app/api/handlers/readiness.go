package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renascerfit/coach/internal/app/api/middleware"
	"github.com/renascerfit/coach/internal/app/service/readiness"
	"github.com/renascerfit/coach/pkg/response"
)

// @Summary      Daily check-in
// @Description  Saves the day's self-reported metrics (form or wearable sync) and returns the recomputed readiness reading.
// @Tags         Readiness
// @Accept       json
// @Produce      json
// @Param        request body readiness.CheckInRequest true "Daily metrics"
// @Success      200  {object}  response.APIResponse[readiness.Reading]
// @Router       /api/v1/checkin [post]
func ApiCheckIn(svc *readiness.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}
		var req readiness.CheckInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		reading, err := svc.CheckIn(c.Request.Context(), sess.UserID, &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(reading))
	}
}

// @Summary      Today's readiness
// @Description  Returns the readiness score, classification, recommendations and trend for today.
// @Tags         Readiness
// @Produce      json
// @Success      200  {object}  response.APIResponse[readiness.Reading]
// @Router       /api/v1/readiness/today [get]
func ApiReadinessToday(svc *readiness.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}
		reading, err := svc.TodayReading(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(reading))
	}
}

// @Summary      Readiness trend
// @Description  Returns the week's score trend and the daily scores behind it.
// @Tags         Readiness
// @Produce      json
// @Success      200  {object}  response.APIResponse[readiness.TrendReport]
// @Router       /api/v1/readiness/trend [get]
func ApiReadinessTrend(svc *readiness.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}
		report, err := svc.WeeklyTrend(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(report))
	}
}

func RegisterReadinessRoutes(r gin.IRouter, svc *readiness.Service) {
	r.POST("/checkin", ApiCheckIn(svc))
	r.GET("/readiness/today", ApiReadinessToday(svc))
	r.GET("/readiness/trend", ApiReadinessTrend(svc))
}
