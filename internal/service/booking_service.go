package service

import (
	"context"
	"errors"
	"log"

	"github.com/fitclass/booking-service/internal/models"
	"github.com/fitclass/booking-service/internal/repository"
	"github.com/fitclass/booking-service/internal/timezone"
	"github.com/fitclass/booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrClassNotFound    = errors.New("class not found")
	ErrNoSlotsAvailable = errors.New("no slots available")
)

type BookingService interface {
	BookClass(ctx context.Context, classID uint, clientName, clientEmail string) (*models.Booking, error)
	ListBookings(ctx context.Context, clientEmail string) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	classRepo   repository.ClassRepository
	classCache  ClassCache
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, classRepo repository.ClassRepository, classCache ClassCache, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		classCache:  classCache,
		publisher:   publisher,
	}
}

func (s *bookingService) BookClass(ctx context.Context, classID uint, clientName, clientEmail string) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the class row — serializes concurrent booking attempts
		class, err := s.classRepo.FindByIDForUpdate(ctx, tx, classID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		// 2. Check remaining capacity
		if class.AvailableSlots <= 0 {
			return ErrNoSlotsAvailable
		}

		// 3. Record the booking
		booking := &models.Booking{
			ClassID:     classID,
			ClientName:  clientName,
			ClientEmail: clientEmail,
			BookedAt:    timezone.NowBase(),
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		// 4. Take the slot. The conditional update cannot drive the counter
		// below zero; zero rows affected rolls the whole booking back.
		affected, err := s.classRepo.DecrementSlots(ctx, tx, classID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNoSlotsAvailable
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.classCache != nil {
		s.classCache.Invalidate(ctx)
	}

	// Notify downstream consumers; delivery failures must not fail the booking
	if s.publisher != nil {
		_ = s.publisher.PublishBookingCreated(result)
	}

	log.Printf("Booking successful: %s for class ID %d", clientName, classID)

	return result, nil
}

func (s *bookingService) ListBookings(ctx context.Context, clientEmail string) ([]models.Booking, error) {
	return s.bookingRepo.FindByEmail(ctx, clientEmail)
}
