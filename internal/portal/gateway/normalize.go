package gateway

import (
	"log"
	"sort"
	"time"

	"studesk/internal/core/domain"
)

// date layouts the backend has been observed to emit, tried in order
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseOptionalDate returns nil for empty or unparseable values
func parseOptionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, ok := parseDate(raw)
	if !ok {
		return nil
	}
	return &t
}

// normalizeRequests converts wire records into Request values. Records
// missing an id or reference number are dropped and logged rather than
// failing the whole list. The result is sorted by creation date descending.
func normalizeRequests(records []requestRecord, logger *log.Logger) []Request {
	requests := make([]Request, 0, len(records))
	for _, rec := range records {
		if rec.ID == 0 || rec.ReferenceNumber == "" {
			logger.Printf("⚠️ Dropping malformed request record (id=%d, ref=%q)", rec.ID, rec.ReferenceNumber)
			continue
		}

		status := rec.Status
		if status == "" {
			status = string(domain.RequestPending)
		}

		createdAt, ok := parseDate(rec.CreatedAt)
		if !ok {
			createdAt = time.Now()
		}

		requests = append(requests, Request{
			ID:              rec.ID,
			ReferenceNumber: rec.ReferenceNumber,
			StudentID:       rec.StudentID,
			DocumentType:    rec.DocumentType,
			Status:          status,

			AcademicYear:         rec.AcademicYear,
			Semester:             rec.Semester,
			InternshipCompany:    rec.InternshipCompany,
			InternshipStartDate:  rec.InternshipStartDate,
			InternshipEndDate:    rec.InternshipEndDate,
			InternshipSubject:    rec.InternshipSubject,
			InternshipSupervisor: rec.InternshipSupervisor,

			RejectionReason: rec.RejectionReason,
			ProcessedAt:     parseOptionalDate(rec.ProcessedAt),
			CreatedAt:       createdAt,

			Student: rec.Student,
		})
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests
}

// normalizeComplaints applies the same rules to complaint records
func normalizeComplaints(records []complaintRecord, logger *log.Logger) []Complaint {
	complaints := make([]Complaint, 0, len(records))
	for _, rec := range records {
		if rec.ID == 0 || rec.ReferenceNumber == "" {
			logger.Printf("⚠️ Dropping malformed complaint record (id=%d, ref=%q)", rec.ID, rec.ReferenceNumber)
			continue
		}

		status := rec.Status
		if status == "" {
			status = string(domain.ComplaintPending)
		}

		createdAt, ok := parseDate(rec.CreatedAt)
		if !ok {
			createdAt = time.Now()
		}

		complaints = append(complaints, Complaint{
			ID:              rec.ID,
			ReferenceNumber: rec.ReferenceNumber,
			Email:           rec.Email,
			Apogee:          rec.Apogee,
			CIN:             rec.CIN,
			Subject:         rec.Subject,
			Description:     rec.Description,
			Status:          status,

			Response:    rec.Response,
			RespondedAt: parseOptionalDate(rec.RespondedAt),

			RelatedRequestNumber: rec.RelatedRequestNumber,
			CreatedAt:            createdAt,
		})
	}

	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt.After(complaints[j].CreatedAt)
	})
	return complaints
}
