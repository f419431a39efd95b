package types

type SubscriptionStatus string

const (
	SubscriptionStatusActive         SubscriptionStatus = "active"
	SubscriptionStatusPendingPayment SubscriptionStatus = "pending_payment"
	SubscriptionStatusCanceled       SubscriptionStatus = "canceled"
	SubscriptionStatusInactive       SubscriptionStatus = "inactive"
)

type SubscriptionChangeReason string

const (
	SubscriptionChangeReasonPurchase      SubscriptionChangeReason = "purchase"
	SubscriptionChangeReasonRenewal       SubscriptionChangeReason = "renewal"
	SubscriptionChangeReasonPaymentFailed SubscriptionChangeReason = "paymentFailed"
	SubscriptionChangeReasonCancel        SubscriptionChangeReason = "cancel"
	SubscriptionChangeReasonAdminBlock    SubscriptionChangeReason = "adminBlock"
	SubscriptionChangeReasonAdminUnblock  SubscriptionChangeReason = "adminUnblock"
	SubscriptionChangeReasonAdminGrant    SubscriptionChangeReason = "adminGrant"
)
