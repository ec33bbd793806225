package models

import "time"

type Pharmacist struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:100" json:"name"`
	LicenseNumber string `gorm:"size:150" json:"license_number"`

	Pharmacies []Pharmacy `json:"-"`
}

type Pharmacy struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PharmacistID uint   `gorm:"index;not null" json:"pharmacist_id"`
	Name         string `gorm:"size:100" json:"name"`
	Address      string `gorm:"size:255" json:"address"`
}

// Consultation booking made by a user at a pharmacy.
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	PharmacyID uint      `gorm:"index;not null" json:"pharmacy_id"`
	Pharmacy   Pharmacy  `json:"pharmacy"`
	BookedTime time.Time `gorm:"not null" json:"booked_time"`
	Comment    string    `gorm:"size:255" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
