package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Identity tables
// ============================================================

// Student represents the students table (identity reference data)
type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Apogee    string         `gorm:"uniqueIndex;size:8;not null" json:"apogee"`
	CIN       string         `gorm:"size:20;not null" json:"cin"`
	FirstName string         `gorm:"size:50;not null" json:"firstName"`
	LastName  string         `gorm:"size:50;not null" json:"lastName"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// FullName returns the student's display name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// AdminUser represents the admin_users table
type AdminUser struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Username    string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	DisplayName string         `gorm:"size:100" json:"displayName"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminUserResponse DTO returned by login (no secrets client-side)
type AdminUserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

func (u *AdminUser) ToResponse() *AdminUserResponse {
	return &AdminUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	AdminID   uint       `gorm:"index;not null" json:"admin_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	Admin     AdminUser  `gorm:"foreignKey:AdminID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Portal tables
// ============================================================

// DocumentRequest represents the document_requests table
type DocumentRequest struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ReferenceNumber string `gorm:"uniqueIndex;size:20;not null" json:"referenceNumber"`
	StudentID       uint   `gorm:"index;not null" json:"studentId"`
	DocumentType    string `gorm:"size:30;not null" json:"documentType"`
	Status          string `gorm:"size:20;not null;default:'pending'" json:"status"`

	// Type-specific optional fields
	AcademicYear         string `gorm:"size:9" json:"academicYear,omitempty"`
	Semester             string `gorm:"size:10" json:"semester,omitempty"`
	InternshipCompany    string `gorm:"size:100" json:"internshipCompany,omitempty"`
	InternshipStartDate  string `gorm:"size:10" json:"internshipStartDate,omitempty"`
	InternshipEndDate    string `gorm:"size:10" json:"internshipEndDate,omitempty"`
	InternshipSubject    string `gorm:"type:text" json:"internshipSubject,omitempty"`
	InternshipSupervisor string `gorm:"size:100" json:"internshipSupervisor,omitempty"`

	RejectionReason string         `gorm:"type:text" json:"rejectionReason,omitempty"`
	ProcessedAt     *time.Time     `json:"processedAt,omitempty"`
	ProcessedBy     *uint          `json:"processedBy,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Student Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (DocumentRequest) TableName() string {
	return "document_requests"
}

// Complaint represents the complaints table. Student identity is
// denormalized on purpose: a complaint survives as submitted even if
// the student record changes later.
type Complaint struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ReferenceNumber string `gorm:"uniqueIndex;size:20;not null" json:"referenceNumber"`
	Email           string `gorm:"size:100;not null" json:"email"`
	Apogee          string `gorm:"size:8;not null" json:"apogee"`
	CIN             string `gorm:"size:20;not null" json:"cin"`
	Subject         string `gorm:"size:200;not null" json:"subject"`
	Description     string `gorm:"type:text;not null" json:"description"`
	Status          string `gorm:"size:20;not null;default:'pending'" json:"status"`

	// Response and RespondedAt are set together or not at all
	Response    string     `gorm:"type:text" json:"response,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	RespondedBy *uint      `json:"respondedBy,omitempty"`

	RelatedRequestNumber string         `gorm:"size:20;index" json:"relatedRequestNumber,omitempty"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// Enrollment represents the enrollments table backing the academic
// history endpoint (one row per student/year/semester)
type Enrollment struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	StudentID    uint   `gorm:"index;not null" json:"student_id"`
	AcademicYear string `gorm:"size:9;not null" json:"academic_year"`
	Semester     string `gorm:"size:10;not null" json:"semester"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// ============================================================
// Master tables (lookup data)
// ============================================================

// AcademicYear lookup (Master)
type AcademicYear struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Label    string `gorm:"size:9;uniqueIndex;not null" json:"label"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

func (AcademicYear) TableName() string {
	return "academic_years"
}

// Semester lookup (Master)
type Semester struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Label    string `gorm:"size:10;uniqueIndex;not null" json:"label"`
	Ordering int    `gorm:"not null" json:"ordering"`
}

func (Semester) TableName() string {
	return "semesters"
}

// Supervisor lookup (Master)
type Supervisor struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:100;uniqueIndex;not null" json:"full_name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

func (Supervisor) TableName() string {
	return "supervisors"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{},
		&AdminUser{},
		&RefreshToken{},
		&DocumentRequest{},
		&Complaint{},
		&Enrollment{},
		&AcademicYear{},
		&Semester{},
		&Supervisor{},
	)
}
