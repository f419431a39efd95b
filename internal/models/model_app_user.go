package models

import (
	"time"

	"github.com/renascerfit/coach/pkg/types"
)

// AppUser is the service-side profile for an auth-provider user.
// Identity (email, password, session) is owned by the auth provider;
// this row carries the role and billing customer linkage.
type AppUser struct {
	ID    string         `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	Email string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Role  types.UserRole `gorm:"column:role;type:varchar(32);not null;default:'member'" json:"role"`
	// ProviderCustomerID links the user to the payment provider customer.
	// Set the first time a billing event resolves the user by email.
	ProviderCustomerID string    `gorm:"column:provider_customer_id;type:varchar(128);index" json:"provider_customer_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (AppUser) TableName() string {
	return "app_user"
}

func (u *AppUser) IsAdmin() bool {
	return u != nil && u.Role == types.UserRoleAdmin
}
