package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardService handles admin dashboard aggregates
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents admin dashboard data
type DashboardData struct {
	// Request statistics
	TotalRequests    int64 `json:"total_requests"`
	PendingRequests  int64 `json:"pending_requests"`
	AcceptedRequests int64 `json:"accepted_requests"`
	RejectedRequests int64 `json:"rejected_requests"`

	// Complaint statistics
	TotalComplaints    int64 `json:"total_complaints"`
	PendingComplaints  int64 `json:"pending_complaints"`
	ResolvedComplaints int64 `json:"resolved_complaints"`

	// Monthly statistics
	RequestsThisMonth   int64 `json:"requests_this_month"`
	ComplaintsThisMonth int64 `json:"complaints_this_month"`

	// Distribution by document kind
	RequestsByType []TypeCount `json:"requests_by_type"`

	// Recent activity
	RecentRequests []RequestSummary `json:"recent_requests"`
}

// TypeCount represents request volume for one document kind
type TypeCount struct {
	DocumentType string `json:"document_type"`
	Count        int64  `json:"count"`
}

// RequestSummary represents a dashboard request row
type RequestSummary struct {
	ID              uint      `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	DocumentType    string    `json:"document_type"`
	Status          string    `json:"status"`
	StudentEmail    string    `json:"student_email"`
	CreatedAt       time.Time `json:"created_at"`
}

// GetDashboard returns admin dashboard data
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	// Request counts by status
	s.db.WithContext(ctx).Table("document_requests").Where("deleted_at IS NULL").Count(&data.TotalRequests)
	s.db.WithContext(ctx).Table("document_requests").Where("status = ? AND deleted_at IS NULL", "pending").Count(&data.PendingRequests)
	s.db.WithContext(ctx).Table("document_requests").Where("status = ? AND deleted_at IS NULL", "accepted").Count(&data.AcceptedRequests)
	s.db.WithContext(ctx).Table("document_requests").Where("status = ? AND deleted_at IS NULL", "rejected").Count(&data.RejectedRequests)

	// Complaint counts by status
	s.db.WithContext(ctx).Table("complaints").Where("deleted_at IS NULL").Count(&data.TotalComplaints)
	s.db.WithContext(ctx).Table("complaints").Where("status = ? AND deleted_at IS NULL", "pending").Count(&data.PendingComplaints)
	s.db.WithContext(ctx).Table("complaints").Where("status = ? AND deleted_at IS NULL", "resolved").Count(&data.ResolvedComplaints)

	// This month
	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("document_requests").
		Where("created_at >= ? AND deleted_at IS NULL", monthStart).
		Count(&data.RequestsThisMonth)
	s.db.WithContext(ctx).Table("complaints").
		Where("created_at >= ? AND deleted_at IS NULL", monthStart).
		Count(&data.ComplaintsThisMonth)

	// Distribution by document kind
	s.db.WithContext(ctx).Table("document_requests").
		Select("document_type, COUNT(*) as count").
		Where("deleted_at IS NULL").
		Group("document_type").
		Order("count DESC").
		Scan(&data.RequestsByType)

	// Recent requests (latest 10)
	s.db.WithContext(ctx).Table("document_requests").
		Select("document_requests.id, document_requests.reference_number, document_requests.document_type, document_requests.status, students.email as student_email, document_requests.created_at").
		Joins("LEFT JOIN students ON students.id = document_requests.student_id").
		Where("document_requests.deleted_at IS NULL").
		Order("document_requests.created_at DESC").
		Limit(10).
		Scan(&data.RecentRequests)

	return data, nil
}
