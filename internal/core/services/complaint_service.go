package services

import (
	"context"
	"errors"
	"time"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/core/domain"

	"gorm.io/gorm"
)

// Complaint service errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrAlreadyResolved   = errors.New("complaint already resolved")
	ErrEmptyResponse     = errors.New("response text is required")
	ErrMissingSubject    = errors.New("subject and description are required")
)

// ComplaintService handles complaint business logic
type ComplaintService struct {
	complaintRepo *repositories.ComplaintRepository
	requestRepo   *repositories.RequestRepository
	mailer        *Mailer
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo *repositories.ComplaintRepository,
	requestRepo *repositories.RequestRepository,
	mailer *Mailer,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		requestRepo:   requestRepo,
		mailer:        mailer,
	}
}

// CreateComplaintInput represents create complaint input
type CreateComplaintInput struct {
	Email                string `json:"email"`
	Apogee               string `json:"apogee"`
	CIN                  string `json:"cin"`
	Subject              string `json:"subject"`
	Description          string `json:"description"`
	RelatedRequestNumber string `json:"relatedRequestNumber,omitempty"`
}

// Create creates a new complaint. Identity is denormalized into the
// complaint row; no foreign key to the students table.
func (s *ComplaintService) Create(ctx context.Context, input *CreateComplaintInput) (*models.Complaint, error) {
	identity := ValidateIdentityInput{Email: input.Email, Apogee: input.Apogee, CIN: input.CIN}
	if !identity.ShapeValid() {
		return nil, ErrBadIdentityInput
	}
	if input.Subject == "" || input.Description == "" {
		return nil, ErrMissingSubject
	}

	complaint := &models.Complaint{
		ReferenceNumber:      NewReference(ComplaintRefPrefix),
		Email:                input.Email,
		Apogee:               input.Apogee,
		CIN:                  input.CIN,
		Subject:              input.Subject,
		Description:          input.Description,
		Status:               string(domain.ComplaintPending),
		RelatedRequestNumber: input.RelatedRequestNumber,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// ComplaintDetail bundles a complaint with its related-request snapshot
type ComplaintDetail struct {
	Complaint      *models.Complaint       `json:"complaint"`
	RelatedRequest *models.DocumentRequest `json:"relatedRequest,omitempty"`
	Student        *models.Student         `json:"student,omitempty"`
}

// GetDetail gets a complaint by ID with the related request snapshot
// when the reference resolves. A dangling reference is not an error.
func (s *ComplaintService) GetDetail(ctx context.Context, id uint) (*ComplaintDetail, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	detail := &ComplaintDetail{Complaint: complaint}
	if complaint.RelatedRequestNumber != "" {
		if related, err := s.requestRepo.GetByReference(ctx, complaint.RelatedRequestNumber); err == nil {
			detail.RelatedRequest = related
			detail.Student = &related.Student
		}
	}
	return detail, nil
}

// List lists complaints, newest first
func (s *ComplaintService) List(ctx context.Context, page, limit int) ([]*models.Complaint, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return s.complaintRepo.List(ctx, (page-1)*limit, limit)
}

// RespondInput represents a complaint response submission
type RespondInput struct {
	Response string `json:"response"`
	AdminID  *uint  `json:"adminId,omitempty"`
}

// Respond records the admin response and resolves the complaint.
// Response text and the responded timestamp are written together; a
// complaint only becomes resolved through this path.
func (s *ComplaintService) Respond(ctx context.Context, complaintID uint, input *RespondInput) (*models.Complaint, error) {
	if input.Response == "" {
		return nil, ErrEmptyResponse
	}

	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	if complaint.Status == string(domain.ComplaintResolved) {
		return nil, ErrAlreadyResolved
	}

	now := time.Now()
	complaint.Response = input.Response
	complaint.RespondedAt = &now
	complaint.RespondedBy = input.AdminID
	complaint.Status = string(domain.ComplaintResolved)

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go s.mailer.NotifyComplaintResponse(complaint)
	}

	return complaint, nil
}
