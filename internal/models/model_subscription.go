package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/renascerfit/coach/pkg/types"
)

// Subscription is one billing transition for a user. Rows are append-only;
// the newest row by created_at is authoritative for access decisions.
type Subscription struct {
	ID     string                   `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID string                   `gorm:"column:user_id;type:varchar(64);not null;index:idx_sub_user_created,priority:1" json:"user_id"`
	Status types.SubscriptionStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	// AccessBlocked is an admin override. A blocked row denies access
	// regardless of status; it is carried forward by billing upserts and
	// cleared only by an explicit unblock.
	AccessBlocked      bool                  `gorm:"column:access_blocked;not null;default:false" json:"access_blocked"`
	PlanType           types.PlanType        `gorm:"column:plan_type;type:varchar(32)" json:"plan_type"`
	ProviderID         types.PaymentProvider `gorm:"column:provider_id;type:varchar(32)" json:"provider_id"`
	ProviderCustomerID string                `gorm:"column:provider_customer_id;type:varchar(128)" json:"provider_customer_id"`
	// Extra stores additional JSON data (for example: price id and raw event type).
	Extra     datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time      `gorm:"index:idx_sub_user_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscription"
}

// Active reports whether this row grants paid access on its own.
func (s *Subscription) Active() bool {
	return s != nil && s.Status == types.SubscriptionStatusActive && !s.AccessBlocked
}
