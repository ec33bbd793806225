package services

import (
	"errors"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"

	"gorm.io/gorm"
)

type BookingService struct{ db *gorm.DB }

func NewBookingService(db *gorm.DB) *BookingService { return &BookingService{db: db} }

func (s *BookingService) ListPharmacies() ([]models.Pharmacy, error) {
	var pharmacies []models.Pharmacy
	if err := s.db.Find(&pharmacies).Error; err != nil {
		return nil, err
	}
	return pharmacies, nil
}

func (s *BookingService) CreateBooking(userID, pharmacyID uint, bookedTime time.Time, comment string) (*models.Booking, error) {
	var pharmacy models.Pharmacy
	if err := s.db.First(&pharmacy, pharmacyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPharmacyNotFound
		}
		return nil, err
	}

	booking := &models.Booking{
		UserID:     userID,
		PharmacyID: pharmacyID,
		BookedTime: bookedTime,
		Comment:    comment,
	}
	if err := s.db.Create(booking).Error; err != nil {
		return nil, err
	}
	booking.Pharmacy = pharmacy
	return booking, nil
}

func (s *BookingService) ListBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Preload("Pharmacy").
		Where("user_id = ?", userID).
		Order("booked_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
