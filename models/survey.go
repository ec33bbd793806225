package models

import (
	"time"

	"gorm.io/datatypes"
)

// One row per submitted survey. Rows are insert-only; a new submission
// always creates a new record.
type SurveyResponse struct {
	ID                  uint `gorm:"primaryKey"`
	UserID              uint `gorm:"index;not null"` // FK → users.id
	User                User
	ObjectiveResponses  datatypes.JSON `gorm:"type:jsonb;not null"`
	SubjectiveResponses datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt           time.Time
}
