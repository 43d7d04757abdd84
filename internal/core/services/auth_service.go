package services

import (
	"context"
	"errors"
	"time"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/config"
	"studesk/internal/pkg/jwt"
	"studesk/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo        repositories.AdminRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	adminRepo repositories.AdminRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		adminRepo:        adminRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// LoginInput represents login input; identifier is email or username
type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Admin        *models.AdminUserResponse `json:"admin"`
	AccessToken  string                    `json:"access_token"`
	RefreshToken string                    `json:"refresh_token"`
}

// Login authenticates an admin and issues a token pair
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	admin, err := s.adminRepo.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, ErrAdminInactive
	}

	return s.issueTokens(ctx, admin)
}

// Refresh rotates a refresh token and issues a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, password.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if stored.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, ErrTokenExpired
	}

	admin, err := s.adminRepo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	if !admin.IsActive {
		return nil, ErrAdminInactive
	}

	// Rotate: revoke the used token before issuing a new pair
	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, admin)
}

// Logout revokes all refresh tokens of an admin
func (s *AuthService) Logout(ctx context.Context, adminID uint) error {
	return s.refreshTokenRepo.RevokeAllByAdminID(ctx, adminID)
}

// issueTokens generates and persists a fresh token pair
func (s *AuthService) issueTokens(ctx context.Context, admin *models.AdminUser) (*AuthResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(
		admin.ID, admin.Email, admin.Username,
		s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()
	refreshToken, err := jwt.GenerateRefreshToken(
		admin.ID, tokenID,
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		AdminID:   admin.ID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: refreshExpiry(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Admin:        admin.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// refreshExpiry computes the refresh token expiry timestamp
func refreshExpiry(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour)
}
