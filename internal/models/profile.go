package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the one-per-user onboarding record. Its absence is the signal
// that onboarding has not started.
type Profile struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                 string    `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	Email                  *string   `json:"email,omitempty"`
	FirstName              string    `gorm:"column:first_name;not null" json:"firstName"`
	LastName               string    `gorm:"column:last_name;not null" json:"lastName"`
	Birthday               Date      `gorm:"not null" json:"birthday"`
	HittingSide            string    `gorm:"column:hitting_side;not null" json:"hittingSide"`
	HasCompletedOnboarding bool      `gorm:"column:has_completed_onboarding;not null;default:false" json:"hasCompletedOnboarding"`
	CreatedAt              time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt              time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
