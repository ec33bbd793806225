package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Name          string
	Gender        string `gorm:"size:100"`
	Dob           time.Time
	Occupation    string `gorm:"size:150"`
	WorkStyle     string `gorm:"size:150"`
	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool `gorm:"default:false"`
}
