package gateway

import "time"

// Student represents a validated student identity
type Student struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Apogee    string `json:"apogee"`
	CIN       string `json:"cin"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns the student's full name
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Request is a normalized document request record
type Request struct {
	ID              uint
	ReferenceNumber string
	StudentID       uint
	DocumentType    string
	Status          string

	AcademicYear         string
	Semester             string
	InternshipCompany    string
	InternshipStartDate  string
	InternshipEndDate    string
	InternshipSubject    string
	InternshipSupervisor string

	RejectionReason string
	ProcessedAt     *time.Time
	CreatedAt       time.Time

	Student Student
}

// Complaint is a normalized complaint record
type Complaint struct {
	ID              uint
	ReferenceNumber string
	Email           string
	Apogee          string
	CIN             string
	Subject         string
	Description     string
	Status          string

	Response    string
	RespondedAt *time.Time

	RelatedRequestNumber string
	CreatedAt            time.Time
}

// ComplaintDetail is a complaint with its student and related request snapshot
type ComplaintDetail struct {
	Complaint
	Student        *Student        `json:"student"`
	RelatedRequest *RelatedRequest `json:"relatedRequest"`
}

// RelatedRequest is the request snapshot embedded in a complaint detail
type RelatedRequest struct {
	ID              uint   `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
	DocumentType    string `json:"documentType"`
	Status          string `json:"status"`
}

// DemandSummary is one row of a student's request dashboard
type DemandSummary struct {
	ID              uint   `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
	DocumentType    string `json:"documentType"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	Label           string `json:"label"`
}

// HistoryYear groups a student's enrollments by academic year
type HistoryYear struct {
	Year      string   `json:"year"`
	Semesters []string `json:"semesters"`
}

// AdminUser is the authenticated admin returned by login
type AdminUser struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Identity is the email/apogee/CIN triple used for student validation
type Identity struct {
	Email  string `json:"email"`
	Apogee string `json:"apogee"`
	CIN    string `json:"cin"`
}

// CreateRequestInput carries a new document request
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

// CreateComplaintInput carries a new complaint
type CreateComplaintInput struct {
	Email                string `json:"email"`
	Apogee               string `json:"apogee"`
	CIN                  string `json:"cin"`
	Subject              string `json:"subject"`
	Description          string `json:"description"`
	RelatedRequestNumber string `json:"relatedRequestNumber,omitempty"`
}

// CreateResult acknowledges a successful create
type CreateResult struct {
	ID              uint   `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
}

// StatusUpdate carries a request status change
type StatusUpdate struct {
	Status          string `json:"status"`
	AdminID         uint   `json:"adminId,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// EmailInput carries an optional override for the decision email
type EmailInput struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

// EmailResult reports the outcome of a decision-email send
type EmailResult struct {
	Email   string `json:"email"`
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// wire DTOs keep dates as raw strings so normalization owns the parsing

type requestRecord struct {
	ID              uint   `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
	StudentID       uint   `json:"studentId"`
	DocumentType    string `json:"documentType"`
	Status          string `json:"status"`

	AcademicYear         string `json:"academicYear"`
	Semester             string `json:"semester"`
	InternshipCompany    string `json:"internshipCompany"`
	InternshipStartDate  string `json:"internshipStartDate"`
	InternshipEndDate    string `json:"internshipEndDate"`
	InternshipSubject    string `json:"internshipSubject"`
	InternshipSupervisor string `json:"internshipSupervisor"`

	RejectionReason string  `json:"rejectionReason"`
	ProcessedAt     string  `json:"processedAt"`
	CreatedAt       string  `json:"createdAt"`
	Student         Student `json:"student"`
}

type complaintRecord struct {
	ID              uint   `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
	Email           string `json:"email"`
	Apogee          string `json:"apogee"`
	CIN             string `json:"cin"`
	Subject         string `json:"subject"`
	Description     string `json:"description"`
	Status          string `json:"status"`

	Response    string `json:"response"`
	RespondedAt string `json:"respondedAt"`

	RelatedRequestNumber string `json:"relatedRequestNumber"`
	CreatedAt            string `json:"createdAt"`
}
