package repository

import (
	"context"

	"github.com/fitclass/booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClassRepository interface {
	FindAll(ctx context.Context) ([]models.Class, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error)
	DecrementSlots(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) FindAll(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// FindByIDForUpdate acquires a row-level lock on the class within the given
// transaction, serializing concurrent booking attempts for the same class.
func (r *classRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error) {
	var class models.Class
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// DecrementSlots takes one slot if any remain. The available_slots > 0 guard
// keeps the counter from going negative even outside a row lock; callers must
// check the returned rows-affected count.
func (r *classRepository) DecrementSlots(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ? AND available_slots > 0", id).
		UpdateColumn("available_slots", gorm.Expr("available_slots - 1"))
	return result.RowsAffected, result.Error
}
