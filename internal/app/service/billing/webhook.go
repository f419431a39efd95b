package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/tool"
	"github.com/renascerfit/coach/pkg/types"
)

// ProviderEvent is the normalized form of a payment-provider webhook
// payload: event type, customer identity, and the price that changed.
type ProviderEvent struct {
	Type       string
	CustomerID string
	Email      string
	PriceID    string
}

// ErrIgnoredEvent marks event types the service deliberately does not
// handle. The webhook still acknowledges them so the provider stops
// retrying.
var ErrIgnoredEvent = fmt.Errorf("ignored event type")

// ErrInvalidPayload marks permanently malformed webhook bodies. Handlers
// answer these with 4xx so the provider stops retrying them.
var ErrInvalidPayload = fmt.Errorf("invalid webhook payload")

type stripePayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Customer        string `json:"customer"`
			CustomerEmail   string `json:"customer_email"`
			CustomerDetails struct {
				Email string `json:"email"`
			} `json:"customer_details"`
			Lines struct {
				Data []struct {
					Price struct {
						ID string `json:"id"`
					} `json:"price"`
				} `json:"data"`
			} `json:"lines"`
			Metadata struct {
				PriceID string `json:"price_id"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseProviderEvent extracts the normalized event from a raw webhook body.
func ParseProviderEvent(raw []byte) (*ProviderEvent, error) {
	var p stripePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.Type == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrInvalidPayload)
	}

	ev := &ProviderEvent{
		Type:       p.Type,
		CustomerID: p.Data.Object.Customer,
		Email:      p.Data.Object.CustomerEmail,
	}
	if ev.Email == "" {
		ev.Email = p.Data.Object.CustomerDetails.Email
	}
	if len(p.Data.Object.Lines.Data) > 0 {
		ev.PriceID = p.Data.Object.Lines.Data[0].Price.ID
	}
	if ev.PriceID == "" {
		ev.PriceID = p.Data.Object.Metadata.PriceID
	}
	return ev, nil
}

// eventTransition maps provider event types to the subscription status and
// change reason they produce.
func eventTransition(eventType string) (types.SubscriptionStatus, types.SubscriptionChangeReason, error) {
	switch eventType {
	case "checkout.session.completed":
		return types.SubscriptionStatusActive, types.SubscriptionChangeReasonPurchase, nil
	case "invoice.paid":
		return types.SubscriptionStatusActive, types.SubscriptionChangeReasonRenewal, nil
	case "invoice.payment_failed":
		return types.SubscriptionStatusPendingPayment, types.SubscriptionChangeReasonPaymentFailed, nil
	case "customer.subscription.deleted":
		return types.SubscriptionStatusCanceled, types.SubscriptionChangeReasonCancel, nil
	default:
		return "", "", ErrIgnoredEvent
	}
}

// HandleWebhook processes one raw provider webhook body: logs it, resolves
// the user, maps the price to a plan, and appends the subscription row.
func (s *Service) HandleWebhook(ctx context.Context, raw []byte, traceID string) error {
	eventLog := &models.BillingEventLog{
		ID:         tool.GenerateUUIDV7(),
		ProviderID: string(types.PaymentProviderStripe),
		TraceID:    traceID,
		Payload:    datatypes.JSON(raw),
		Status:     models.BillingEventLogStatusReceived,
	}
	if err := s.db.WithContext(ctx).Create(eventLog).Error; err != nil {
		// The event can still be handled; losing the audit row is logged only.
		logctx.FromCtx(ctx, s.log).Errorf("webhook: failed to save event log: %v", err)
	}

	err := s.handleWebhookEvent(ctx, raw, eventLog)
	if err != nil {
		s.finishEventLog(ctx, eventLog, models.BillingEventLogStatusHandleFailed, err)
		return err
	}
	s.finishEventLog(ctx, eventLog, models.BillingEventLogStatusHandled, nil)
	return nil
}

func (s *Service) handleWebhookEvent(ctx context.Context, raw []byte, eventLog *models.BillingEventLog) error {
	ev, err := ParseProviderEvent(raw)
	if err != nil {
		return err
	}
	eventLog.EventType = ev.Type

	status, reason, err := eventTransition(ev.Type)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Infow("webhook_event_ignored", "type", ev.Type)
		return nil
	}

	user, err := s.resolveUser(ctx, ev.CustomerID, ev.Email)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	eventLog.UserID = &user.ID

	sub := &models.Subscription{
		UserID:             user.ID,
		Status:             status,
		ProviderID:         types.PaymentProviderStripe,
		ProviderCustomerID: ev.CustomerID,
	}

	if plan := s.cfg.GetPlanByPriceID(ev.PriceID); plan != nil {
		sub.PlanType = plan.PlanType
	} else if before, lerr := s.latestSubscription(ctx, user.ID); lerr == nil && before != nil {
		// Events without a resolvable price keep the previous plan.
		sub.PlanType = before.PlanType
	}

	extra, _ := json.Marshal(map[string]string{"event_type": ev.Type, "price_id": ev.PriceID})
	sub.Extra = extra

	return s.appendSubscription(ctx, sub, reason, datatypes.JSONMap{"trigger": "webhook"})
}

func (s *Service) finishEventLog(ctx context.Context, eventLog *models.BillingEventLog, status models.BillingEventLogStatus, handleErr error) {
	eventLog.Status = status
	if handleErr != nil {
		eventLog.Error = handleErr.Error()
	}
	if err := s.db.WithContext(ctx).Save(eventLog).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("webhook: failed to update event log: %v", err)
	}
}
