package appleiap

import (
	"context"
	"errors"
	"fmt"

	"github.com/awa/go-iap/appstore"
)

type VerifyOptions struct {
	SharedSecret string
	Sandbox      bool
}

// ReceiptInfo is the subset of App Store receipt fields the billing glue
// needs to map a purchase to a plan.
type ReceiptInfo struct {
	ProductID             string `json:"product_id"`
	TransactionID         string `json:"transaction_id"`
	OriginalTransactionID string `json:"original_transaction_id"`
	PurchaseDateMs        string `json:"purchase_date_ms"`
	ExpiresDateMs         string `json:"expires_date_ms"`
}

type receiptResponse struct {
	LatestReceiptInfo []*ReceiptInfo `json:"latest_receipt_info"`
}

// VerifyReceipt validates a base64 receipt against the App Store and
// returns the most recent receipt entry.
func VerifyReceipt(ctx context.Context, receiptData string, opts *VerifyOptions) (*ReceiptInfo, error) {
	if opts == nil {
		return nil, errors.New("opts is nil")
	}
	if receiptData == "" {
		return nil, errors.New("receipt data is empty")
	}

	client := appstore.New()
	if opts.Sandbox {
		client.ProductionURL = client.SandboxURL
	}

	var result receiptResponse
	err := client.Verify(ctx, appstore.IAPRequest{
		ReceiptData: receiptData,
		Password:    opts.SharedSecret,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("apple receipt verification failed: %w", err)
	}
	if len(result.LatestReceiptInfo) == 0 {
		return nil, errors.New("apple receipt has no purchases")
	}
	return result.LatestReceiptInfo[len(result.LatestReceiptInfo)-1], nil
}
