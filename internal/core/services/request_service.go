package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/core/domain"

	"gorm.io/gorm"
)

// Request service errors
var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrInvalidDocumentType   = errors.New("invalid document type")
	ErrReclamationNotHere    = errors.New("reclamations are submitted as complaints")
	ErrInvalidStatus         = errors.New("invalid request status")
	ErrRequestAlreadyDecided = errors.New("request already processed")
	ErrMissingFields         = errors.New("missing required fields")
)

// RequestService handles document request business logic
type RequestService struct {
	requestRepo *repositories.RequestRepository
	studentRepo repositories.StudentRepository
	mailer      *Mailer
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo *repositories.RequestRepository,
	studentRepo repositories.StudentRepository,
	mailer *Mailer,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		studentRepo: studentRepo,
		mailer:      mailer,
	}
}

// CreateRequestInput represents create request input
type CreateRequestInput struct {
	StudentID    uint   `json:"studentId"`
	DocumentType string `json:"documentType"`

	AcademicYear         string `json:"academicYear,omitempty"`
	Semester             string `json:"semester,omitempty"`
	InternshipCompany    string `json:"internshipCompany,omitempty"`
	InternshipStartDate  string `json:"internshipStartDate,omitempty"`
	InternshipEndDate    string `json:"internshipEndDate,omitempty"`
	InternshipSubject    string `json:"internshipSubject,omitempty"`
	InternshipSupervisor string `json:"internshipSupervisor,omitempty"`
}

// details builds the typed detail variant for the chosen document kind
func (in *CreateRequestInput) details() (domain.DocumentDetails, error) {
	switch domain.DocumentType(in.DocumentType) {
	case domain.DocAttestationScolarite:
		return domain.ScolariteDetails{}, nil
	case domain.DocAttestationReussite:
		return domain.ReussiteDetails{AcademicYear: in.AcademicYear}, nil
	case domain.DocReleveNotes:
		return domain.ReleveDetails{AcademicYear: in.AcademicYear, Semester: in.Semester}, nil
	case domain.DocConventionStage:
		return domain.StageDetails{
			Company:    in.InternshipCompany,
			StartDate:  in.InternshipStartDate,
			EndDate:    in.InternshipEndDate,
			Subject:    in.InternshipSubject,
			Supervisor: in.InternshipSupervisor,
		}, nil
	case domain.DocReclamation:
		// Reclamations carry a related-request reference and live in the
		// complaints flow
		return nil, ErrReclamationNotHere
	default:
		return nil, ErrInvalidDocumentType
	}
}

// Create creates a new document request after validating the student
// and the type-specific required fields
func (s *RequestService) Create(ctx context.Context, input *CreateRequestInput) (*models.DocumentRequest, error) {
	details, err := input.details()
	if err != nil {
		return nil, err
	}

	if missing := details.Validate(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, missing)
	}

	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	request := &models.DocumentRequest{
		ReferenceNumber:      NewReference(RequestRefPrefix),
		StudentID:            student.ID,
		DocumentType:         input.DocumentType,
		Status:               string(domain.RequestPending),
		AcademicYear:         input.AcademicYear,
		Semester:             input.Semester,
		InternshipCompany:    input.InternshipCompany,
		InternshipStartDate:  input.InternshipStartDate,
		InternshipEndDate:    input.InternshipEndDate,
		InternshipSubject:    input.InternshipSubject,
		InternshipSupervisor: input.InternshipSupervisor,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	request.Student = *student
	return request, nil
}

// GetByID gets a request by ID
func (s *RequestService) GetByID(ctx context.Context, id uint) (*models.DocumentRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

// ListInput represents list input
type ListInput struct {
	Page   int
	Limit  int
	Status string
}

// ListOutput represents list output
type ListOutput struct {
	Requests   []*models.DocumentRequest `json:"requests"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"total_pages"`
}

// List lists document requests, newest first
func (s *RequestService) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	offset := (input.Page - 1) * input.Limit

	var (
		requests []*models.DocumentRequest
		total    int64
		err      error
	)
	if input.Status != "" {
		requests, total, err = s.requestRepo.ListByStatus(ctx, input.Status, offset, input.Limit)
	} else {
		requests, total, err = s.requestRepo.List(ctx, offset, input.Limit)
	}
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListOutput{
		Requests:   requests,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatusInput represents a status transition request
type UpdateStatusInput struct {
	Status          string `json:"status"`
	AdminID         *uint  `json:"adminId,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// UpdateStatus applies a pending->accepted or pending->rejected
// transition. Both target states are terminal; anything else fails.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID uint, input *UpdateStatusInput) (*models.DocumentRequest, error) {
	next := domain.RequestStatus(input.Status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	request, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	current := domain.RequestStatus(request.Status)
	if !current.CanTransitionTo(next) {
		if current != domain.RequestPending {
			return nil, ErrRequestAlreadyDecided
		}
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	request.Status = string(next)
	request.ProcessedAt = &now
	request.ProcessedBy = input.AdminID
	if next == domain.RequestRejected {
		request.RejectionReason = input.RejectionReason
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	// Notify the student; a mail failure must not undo the transition
	if s.mailer != nil {
		go s.mailer.NotifyRequestDecision(request)
	}

	return request, nil
}

// SendEmailInput represents the manual notification payload
type SendEmailInput struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

// SendEmailOutput mirrors the send-email contract body
type SendEmailOutput struct {
	Email   string `json:"email"`
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// SendEmail sends (or skips, when mail is not configured) a manual
// notification about a request to its owning student
func (s *RequestService) SendEmail(ctx context.Context, requestID uint, input *SendEmailInput) (*SendEmailOutput, error) {
	request, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	subject := input.Subject
	if subject == "" {
		subject = fmt.Sprintf("Votre demande %s", request.ReferenceNumber)
	}
	body := input.Message
	if body == "" {
		body = defaultDecisionMessage(request)
	}

	if s.mailer == nil || !s.mailer.Enabled() {
		return &SendEmailOutput{
			Email:   request.Student.Email,
			Sent:    false,
			Message: "mail delivery is not configured",
		}, nil
	}

	if err := s.mailer.Send(ctx, request.Student.Email, subject, body); err != nil {
		return &SendEmailOutput{
			Email:   request.Student.Email,
			Sent:    false,
			Message: err.Error(),
		}, nil
	}

	return &SendEmailOutput{
		Email:   request.Student.Email,
		Sent:    true,
		Message: "notification sent",
	}, nil
}

// defaultDecisionMessage builds the fallback body for manual notifications
func defaultDecisionMessage(request *models.DocumentRequest) string {
	switch domain.RequestStatus(request.Status) {
	case domain.RequestAccepted:
		return fmt.Sprintf("Votre demande %s a été acceptée. Le document est disponible au téléchargement.", request.ReferenceNumber)
	case domain.RequestRejected:
		msg := fmt.Sprintf("Votre demande %s a été rejetée.", request.ReferenceNumber)
		if request.RejectionReason != "" {
			msg += " Motif : " + request.RejectionReason
		}
		return msg
	default:
		return fmt.Sprintf("Votre demande %s est en cours de traitement.", request.ReferenceNumber)
	}
}
