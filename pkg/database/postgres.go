package database

import (
	"log"
	"time"

	"github.com/fitclass/booking-service/internal/models"
	"github.com/fitclass/booking-service/internal/timezone"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Class{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	seedClasses(db)

	return db
}

// seedClasses inserts the fixture schedule on first boot only. Times are
// today's date at fixed hours, stored as zone-qualified base-zone stamps.
func seedClasses(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Class{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count classes: %v", err)
	}
	if count > 0 {
		return
	}

	base, err := timezone.LoadZone(timezone.BaseZone)
	if err != nil {
		log.Fatalf("failed to load base zone: %v", err)
	}
	now := time.Now().In(base)
	at := func(hour, min int) string {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, base).
			Format(time.RFC3339)
	}

	classes := []models.Class{
		{Name: "Yoga Morning", DateTime: at(6, 30), Instructor: "Anita", AvailableSlots: 5},
		{Name: "Cardio Blast", DateTime: at(9, 0), Instructor: "Rahul", AvailableSlots: 3},
		{Name: "Kung Fu", DateTime: at(10, 0), Instructor: "Jeva", AvailableSlots: 7},
		{Name: "Evening Stretch", DateTime: at(18, 0), Instructor: "Meera", AvailableSlots: 4},
	}
	if err := db.Create(&classes).Error; err != nil {
		log.Fatalf("failed to seed classes: %v", err)
	}

	log.Printf("seeded %d classes", len(classes))
}
