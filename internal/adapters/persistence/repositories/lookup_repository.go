package repositories

import (
	"context"

	"studesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// LookupRepository handles master lookup data access
type LookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository
func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// ListAcademicYears returns active academic year labels, newest first
func (r *LookupRepository) ListAcademicYears(ctx context.Context) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Model(&models.AcademicYear{}).
		Where("is_active = ?", true).
		Order("label DESC").
		Pluck("label", &labels).Error
	return labels, err
}

// ListSemesters returns semester labels in teaching order
func (r *LookupRepository) ListSemesters(ctx context.Context) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Model(&models.Semester{}).
		Order("ordering ASC").
		Pluck("label", &labels).Error
	return labels, err
}

// ListSupervisors returns active supervisor names alphabetically
func (r *LookupRepository) ListSupervisors(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Supervisor{}).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Pluck("full_name", &names).Error
	return names, err
}
