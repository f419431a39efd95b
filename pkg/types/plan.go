package types

type PaymentProvider string

const (
	PaymentProviderStripe PaymentProvider = "stripe"
	PaymentProviderApple  PaymentProvider = "apple"
	PaymentProviderInner  PaymentProvider = "inner"
)

type PlanType string

const (
	PlanTypeMensal     PlanType = "mensal"
	PlanTypeTrimestral PlanType = "trimestral"
	PlanTypeAnual      PlanType = "anual"
)

// PlanPrice maps a provider price identifier to internal plan metadata.
// The full table lives in config and is immutable at runtime.
type PlanPrice struct {
	PriceID           string          `json:"price_id" mapstructure:"price_id"`
	ProviderID        PaymentProvider `json:"provider_id" mapstructure:"provider_id"`
	PlanType          PlanType        `json:"plan_type" mapstructure:"plan_type"`
	DisplayName       string          `json:"display_name" mapstructure:"display_name"`
	MonthlyValueCents int64           `json:"monthly_value_cents" mapstructure:"monthly_value_cents"`
}
