package repositories

import (
	"context"

	"studesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// RequestRepository handles document request data access
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create creates a new document request
func (r *RequestRepository) Create(ctx context.Context, request *models.DocumentRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a document request by ID with its student
func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*models.DocumentRequest, error) {
	var request models.DocumentRequest
	err := r.db.WithContext(ctx).
		Preload("Student").
		First(&request, id).Error
	return &request, err
}

// GetByReference gets a document request by reference number
func (r *RequestRepository) GetByReference(ctx context.Context, reference string) (*models.DocumentRequest, error) {
	var request models.DocumentRequest
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("reference_number = ?", reference).
		First(&request).Error
	return &request, err
}

// ListByStudent gets a student's requests, newest first
func (r *RequestRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.DocumentRequest, error) {
	var requests []*models.DocumentRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// List lists document requests with pagination, newest first
func (r *RequestRepository) List(ctx context.Context, offset, limit int) ([]*models.DocumentRequest, int64, error) {
	var requests []*models.DocumentRequest
	var total int64

	r.db.WithContext(ctx).Model(&models.DocumentRequest{}).Count(&total)

	err := r.db.WithContext(ctx).
		Preload("Student").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error

	return requests, total, err
}

// ListByStatus lists document requests filtered by status
func (r *RequestRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.DocumentRequest, int64, error) {
	var requests []*models.DocumentRequest
	var total int64

	r.db.WithContext(ctx).Model(&models.DocumentRequest{}).Where("status = ?", status).Count(&total)

	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error

	return requests, total, err
}

// Update saves a document request
func (r *RequestRepository) Update(ctx context.Context, request *models.DocumentRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// CountByStatus counts requests in a given status
func (r *RequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DocumentRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
