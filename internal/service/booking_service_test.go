package service

import (
	"context"
	"testing"

	"github.com/fitclass/booking-service/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock BookingRepository ---
//
// BookClass itself needs a live transaction and is covered by the
// integration suite; these tests exercise the lookup path.

type mockBookingRepo struct {
	findByEmailFn func(ctx context.Context, email string) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return nil
}
func (m *mockBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

func TestListBookings_Success(t *testing.T) {
	repo := &mockBookingRepo{
		findByEmailFn: func(ctx context.Context, email string) ([]models.Booking, error) {
			return []models.Booking{
				{ID: 1, ClassID: 2, ClientName: "Priya", ClientEmail: email, BookedAt: "2025-06-10T09:05:00+05:30"},
			}, nil
		},
	}

	svc := NewBookingService(repo, &mockClassRepo{}, nil, nil)
	bookings, err := svc.ListBookings(context.Background(), "priya@example.com")

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, uint(2), bookings[0].ClassID)
	assert.Equal(t, "priya@example.com", bookings[0].ClientEmail)
}

func TestListBookings_EmptyIsNotAnError(t *testing.T) {
	var captured string
	repo := &mockBookingRepo{
		findByEmailFn: func(ctx context.Context, email string) ([]models.Booking, error) {
			captured = email
			return []models.Booking{}, nil
		},
	}

	svc := NewBookingService(repo, &mockClassRepo{}, nil, nil)
	bookings, err := svc.ListBookings(context.Background(), "Nobody@Example.com")

	assert.NoError(t, err)
	assert.Empty(t, bookings)
	// Exact string handed to storage, no lowercasing
	assert.Equal(t, "Nobody@Example.com", captured)
}
