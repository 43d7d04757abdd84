package repositories

import (
	"context"

	"studesk/internal/adapters/persistence/models"
)

// AdminRepository defines admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.AdminUser, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// RefreshTokenRepository defines refresh token data access
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeAllByAdminID(ctx context.Context, adminID uint) error
	DeleteExpired(ctx context.Context) error
}

// StudentRepository defines student identity data access
type StudentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	FindByIdentity(ctx context.Context, email, apogee, cin string) (*models.Student, error)
	ListEnrollments(ctx context.Context, studentID uint) ([]*models.Enrollment, error)
}
