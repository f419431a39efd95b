package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/internal/platform/appleiap"
	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/types"
)

// VerifyAppleReceipt validates an App Store receipt for the calling user
// and activates the matching plan. The product id goes through the same
// price table as web checkout prices.
func (s *Service) VerifyAppleReceipt(ctx context.Context, userID, receiptData string) error {
	if userID == "" {
		return fmt.Errorf("invalid params: userID required")
	}

	info, err := appleiap.VerifyReceipt(ctx, receiptData, &appleiap.VerifyOptions{
		SharedSecret: s.cfg.AppleIAP.SharedSecret,
		Sandbox:      !s.cfg.AppleIAP.IsProd,
	})
	if err != nil {
		return err
	}

	plan := s.cfg.GetPlanByProviderPriceID(types.PaymentProviderApple, info.ProductID)
	if plan == nil {
		return fmt.Errorf("unknown apple product: %s", info.ProductID)
	}

	logctx.FromCtx(ctx, s.log).Infow("apple_receipt_verified",
		"user_id", userID, "product_id", info.ProductID, "transaction_id", info.TransactionID)

	extra, _ := json.Marshal(map[string]string{
		"transaction_id":          info.TransactionID,
		"original_transaction_id": info.OriginalTransactionID,
		"product_id":              info.ProductID,
	})

	sub := &models.Subscription{
		UserID:     userID,
		Status:     types.SubscriptionStatusActive,
		PlanType:   plan.PlanType,
		ProviderID: types.PaymentProviderApple,
		Extra:      extra,
	}
	return s.appendSubscription(ctx, sub, types.SubscriptionChangeReasonPurchase,
		datatypes.JSONMap{"trigger": "apple_iap"})
}
