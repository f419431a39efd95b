package models

import (
	"time"

	"gorm.io/datatypes"
)

// DayLog is one self-reported check-in per user per calendar date.
// Optional metrics are pointers; nil means the user skipped the field and
// the readiness calculator applies its documented default.
type DayLog struct {
	ID      string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID  string         `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:ux_daylog_user_date,priority:1" json:"user_id"`
	LogDate datatypes.Date `gorm:"column:log_date;not null;uniqueIndex:ux_daylog_user_date,priority:2" json:"log_date"`

	SleepHours   *float64 `gorm:"column:sleep_hours" json:"sleep_hours"`
	StressLevel  *int     `gorm:"column:stress_level" json:"stress_level"`
	EnergyFocus  *int     `gorm:"column:energy_focus" json:"energy_focus"`
	TrainedToday bool     `gorm:"column:trained_today;not null;default:false" json:"trained_today"`
	// RPE is the perceived exertion of the day's training, meaningful only
	// when TrainedToday is true.
	RPE *int `gorm:"column:rpe" json:"rpe"`
	// Source distinguishes manual check-ins from wearable sync.
	Source    string    `gorm:"column:source;type:varchar(32);not null;default:'manual'" json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DayLog) TableName() string {
	return "day_log"
}
