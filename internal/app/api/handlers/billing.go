package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/renascerfit/coach/internal/app/api/middleware"
	"github.com/renascerfit/coach/internal/app/service/billing"
	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/response"
)

// webhook bodies larger than this are rejected outright
const maxWebhookBody = 1 << 20

// @Summary      Payment provider webhook
// @Description  Handles payment-provider events (checkout completed, invoice paid/failed, subscription canceled). Returns 4xx for malformed payloads and 5xx when handling fails so the provider retries.
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        payload body string true "Provider event payload"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/billing/webhook [post]
func ApiBillingWebhook(svc *billing.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil || len(raw) == 0 {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, "empty payload"))
			return
		}

		traceID := c.GetString(logctx.TraceIDKey)
		if err := svc.HandleWebhook(c.Request.Context(), raw, traceID); err != nil {
			// Original error stays server-side; the provider only needs the
			// status: 400 stops retries on permanently bad payloads, 500
			// keeps them for transient handling failures.
			logctx.FromGin(c, log).Errorw("webhook_handle_error", "error", err.Error())
			if webhookStatus(err) == http.StatusBadRequest {
				c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, "malformed payload"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, "event not processed"))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Verify Apple receipt
// @Description  Validates an App Store receipt for the calling user and activates the matching plan.
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        request body handlers.AppleVerifyRequest true "Base64 receipt"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/billing/apple/verify [post]
func ApiAppleVerify(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}
		var req AppleVerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ReceiptData == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "missing receipt_data"))
			return
		}
		if err := svc.VerifyAppleReceipt(c.Request.Context(), sess.UserID, req.ReceiptData); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, "receipt verification failed"))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

type AppleVerifyRequest struct {
	ReceiptData string `json:"receipt_data"`
}

// webhookStatus maps a webhook handling error to the HTTP status the
// provider should see.
func webhookStatus(err error) int {
	if errors.Is(err, billing.ErrInvalidPayload) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RegisterBillingWebhookRoutes mounts the unauthenticated provider webhook.
func RegisterBillingWebhookRoutes(r gin.IRouter, svc *billing.Service, log *zap.SugaredLogger) {
	r.POST("/billing/webhook", ApiBillingWebhook(svc, log))
}

// RegisterBillingRoutes mounts the authenticated billing endpoints.
func RegisterBillingRoutes(r gin.IRouter, svc *billing.Service) {
	r.POST("/billing/apple/verify", ApiAppleVerify(svc))
}
