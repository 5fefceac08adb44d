package dto

import (
	"github.com/fitclass/booking-service/internal/models"
)

type ClassResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	DateTime       string `json:"date_time"`
	Instructor     string `json:"instructor"`
	AvailableSlots int    `json:"available_slots"`
}

type BookingResponse struct {
	ID          uint   `json:"id"`
	ClassID     uint   `json:"class_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	BookedAt    string `json:"booked_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// ToClassResponse builds the view for one class; dateTime is the stored
// timestamp already projected into the caller's display zone.
func ToClassResponse(c *models.Class, dateTime string) ClassResponse {
	return ClassResponse{
		ID:             c.ID,
		Name:           c.Name,
		DateTime:       dateTime,
		Instructor:     c.Instructor,
		AvailableSlots: c.AvailableSlots,
	}
}

func ToBookingResponse(b *models.Booking, bookedAt string) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ClassID:     b.ClassID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		BookedAt:    bookedAt,
	}
}
