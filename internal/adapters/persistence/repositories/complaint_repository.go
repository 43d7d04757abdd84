package repositories

import (
	"context"

	"studesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ComplaintRepository handles complaint data access
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create creates a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// GetByID gets a complaint by ID
func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).First(&complaint, id).Error
	return &complaint, err
}

// List lists complaints with pagination, newest first
func (r *ComplaintRepository) List(ctx context.Context, offset, limit int) ([]*models.Complaint, int64, error) {
	var complaints []*models.Complaint
	var total int64

	r.db.WithContext(ctx).Model(&models.Complaint{}).Count(&total)

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&complaints).Error

	return complaints, total, err
}

// Update saves a complaint
func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}

// CountByStatus counts complaints in a given status
func (r *ComplaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
