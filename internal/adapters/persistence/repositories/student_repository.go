package repositories

import (
	"context"

	"studesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// studentRepository implements StudentRepository using GORM
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// GetByID gets a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByIdentity matches a student on the full identity triple.
// All three factors must match the same record.
func (r *studentRepository) FindByIdentity(ctx context.Context, email, apogee, cin string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Where("email = ? AND apogee = ? AND cin = ?", email, apogee, cin).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListEnrollments gets a student's enrollment rows ordered by year then semester
func (r *studentRepository) ListEnrollments(ctx context.Context, studentID uint) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("academic_year ASC, semester ASC").
		Find(&enrollments).Error
	return enrollments, err
}
