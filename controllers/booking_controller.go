package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

// GET /pharmacies
func (bc *BookingController) ListPharmacies(c *gin.Context) {
	pharmacies, err := bc.Svc.ListPharmacies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pharmacies": pharmacies})
}

type CreateBookingInput struct {
	PharmacyID uint   `json:"pharmacy_id" binding:"required"`
	BookedTime string `json:"booked_time" binding:"required"` // RFC3339
	Comment    string `json:"comment"`
}

// POST /bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookedTime, err := time.Parse(time.RFC3339, input.BookedTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booked_time must be RFC3339"})
		return
	}

	booking, err := bc.Svc.CreateBooking(uid, input.PharmacyID, bookedTime, input.Comment)
	if err != nil {
		if errors.Is(err, services.ErrPharmacyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pharmacy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /bookings
func (bc *BookingController) ListBookings(c *gin.Context) {
	uid := c.GetUint("userID")

	bookings, err := bc.Svc.ListBookings(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
