package repositories

import (
	"context"
	"fmt"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type netWorthRepository struct {
	db *gorm.DB
}

// NewNetWorthRepository creates a repository for the net worth history
func NewNetWorthRepository(db *gorm.DB) NetWorthRepositoryInterface {
	return &netWorthRepository{db: db}
}

func (r *netWorthRepository) Upsert(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to upsert net worth snapshot: %w", err)
	}
	return nil
}

func (r *netWorthRepository) ListRecent(ctx context.Context, limit int) ([]models.NetWorthSnapshot, error) {
	snapshots := []models.NetWorthSnapshot{}

	query := r.db.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list net worth snapshots: %w", err)
	}

	// reverse into chronological order
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	return snapshots, nil
}
