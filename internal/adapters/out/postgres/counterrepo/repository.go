// Package counterrepo implements the durable id sequences behind order and
// delivery numbers. Each counter is one row; Next bumps it with a single
// insert-or-increment statement, so two transactions racing on a fresh
// counter name both succeed and the row lock taken by the increment is held
// until the caller's transaction ends. Ids are monotonic and never reused.
package counterrepo

import (
	"context"

	"gorm.io/gorm"
)

// CounterDTO is one named sequence. Value holds the last id handed out.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormCounterRepository implements CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Next increments the named counter and returns the new value, creating
// the counter at one on first use.
func (r *GormCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
