package services

import (
	"context"
	"errors"
	"regexp"
	"sort"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Student service errors
var (
	ErrStudentNotMatched = errors.New("no matching student")
	ErrStudentNotFound   = errors.New("student not found")
	ErrBadIdentityInput  = errors.New("invalid identity fields")
)

var (
	apogeePattern = regexp.MustCompile(`^\d{8}$`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// StudentService handles student identity and history logic
type StudentService struct {
	studentRepo repositories.StudentRepository
	requestRepo *repositories.RequestRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.StudentRepository, requestRepo *repositories.RequestRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		requestRepo: requestRepo,
	}
}

// ValidateIdentityInput represents the identity triple
type ValidateIdentityInput struct {
	Email  string `json:"email"`
	Apogee string `json:"apogee"`
	CIN    string `json:"cin"`
}

// ShapeValid performs the local format checks that gate any lookup:
// email shape, 8-digit apogee, non-empty CIN
func (in *ValidateIdentityInput) ShapeValid() bool {
	return emailPattern.MatchString(in.Email) &&
		apogeePattern.MatchString(in.Apogee) &&
		in.CIN != ""
}

// Validate matches the identity triple against the student registry.
// A shape failure or a non-matching triple yields ErrStudentNotMatched;
// the caller surfaces {valid: false, student: null} either way.
func (s *StudentService) Validate(ctx context.Context, input *ValidateIdentityInput) (*models.Student, error) {
	if !input.ShapeValid() {
		return nil, ErrStudentNotMatched
	}

	student, err := s.studentRepo.FindByIdentity(ctx, input.Email, input.Apogee, input.CIN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotMatched
		}
		return nil, err
	}
	return student, nil
}

// DemandSummary is one row of a student's prior request listing
type DemandSummary struct {
	ID              uint   `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
	DocumentType    string `json:"documentType"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	Label           string `json:"label"`
}

// documentTypeLabels maps document types to display labels
var documentTypeLabels = map[string]string{
	"attestation_scolarite": "Attestation de scolarité",
	"attestation_reussite":  "Attestation de réussite",
	"releve_notes":          "Relevé de notes",
	"convention_stage":      "Convention de stage",
	"reclamation":           "Réclamation",
}

// Demands returns a student's prior requests, newest first, after
// re-validating the identity triple
func (s *StudentService) Demands(ctx context.Context, input *ValidateIdentityInput) ([]*DemandSummary, error) {
	student, err := s.Validate(ctx, input)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*DemandSummary, 0, len(requests))
	for _, req := range requests {
		label := documentTypeLabels[req.DocumentType]
		if label == "" {
			label = req.DocumentType
		}
		summaries = append(summaries, &DemandSummary{
			ID:              req.ID,
			ReferenceNumber: req.ReferenceNumber,
			DocumentType:    req.DocumentType,
			Status:          req.Status,
			Date:            req.CreatedAt.Format("2006-01-02"),
			Label:           label,
		})
	}
	return summaries, nil
}

// HistoryYear groups a student's enrollment semesters under a year
type HistoryYear struct {
	Year      string   `json:"year"`
	Semesters []string `json:"semesters"`
}

// History returns a student's enrollment history grouped by academic year
func (s *StudentService) History(ctx context.Context, studentID uint) ([]*HistoryYear, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	enrollments, err := s.studentRepo.ListEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}

	byYear := make(map[string][]string)
	for _, e := range enrollments {
		byYear[e.AcademicYear] = append(byYear[e.AcademicYear], e.Semester)
	}

	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)

	history := make([]*HistoryYear, 0, len(years))
	for _, year := range years {
		history = append(history, &HistoryYear{Year: year, Semesters: byYear[year]})
	}
	return history, nil
}
