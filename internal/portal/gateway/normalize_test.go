package gateway

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func Test_NormalizeRequests_DropsMalformedKeepsValid(t *testing.T) {
	records := []requestRecord{
		{ID: 1, ReferenceNumber: "REQ-AAAA1111", DocumentType: "releve_notes", Status: "pending", CreatedAt: "2026-01-10T09:00:00Z"},
		{ID: 0, ReferenceNumber: "REQ-BBBB2222", DocumentType: "releve_notes"}, // missing id
		{ID: 3, ReferenceNumber: "", DocumentType: "releve_notes"},            // missing reference
		{ID: 4, ReferenceNumber: "REQ-CCCC3333", DocumentType: "attestation_scolarite", Status: "accepted", CreatedAt: "2026-02-01T09:00:00Z"},
	}

	requests := normalizeRequests(records, discardLogger())
	require.Len(t, requests, 2)
	assert.Equal(t, uint(4), requests[0].ID) // newest first
	assert.Equal(t, uint(1), requests[1].ID)
}

func Test_NormalizeRequests_Defaults(t *testing.T) {
	records := []requestRecord{
		{ID: 7, ReferenceNumber: "REQ-DDDD4444", DocumentType: "attestation_scolarite", Status: "", CreatedAt: "not-a-date", ProcessedAt: "also-bad"},
	}

	before := time.Now()
	requests := normalizeRequests(records, discardLogger())
	require.Len(t, requests, 1)

	assert.Equal(t, "pending", requests[0].Status)
	assert.Nil(t, requests[0].ProcessedAt)
	// Unparseable creation date falls back to now
	assert.False(t, requests[0].CreatedAt.Before(before))
}

func Test_NormalizeRequests_DateLayouts(t *testing.T) {
	records := []requestRecord{
		{ID: 1, ReferenceNumber: "REQ-1", CreatedAt: "2026-03-01T10:30:00Z"},
		{ID: 2, ReferenceNumber: "REQ-2", CreatedAt: "2026-03-02 10:30:00"},
		{ID: 3, ReferenceNumber: "REQ-3", CreatedAt: "2026-03-03"},
	}

	requests := normalizeRequests(records, discardLogger())
	require.Len(t, requests, 3)
	assert.Equal(t, uint(3), requests[0].ID)
	assert.Equal(t, uint(2), requests[1].ID)
	assert.Equal(t, uint(1), requests[2].ID)
	assert.Equal(t, 2026, requests[2].CreatedAt.Year())
}

func Test_NormalizeComplaints_SortedAndParsed(t *testing.T) {
	records := []complaintRecord{
		{ID: 1, ReferenceNumber: "REC-OLD", CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: 2, ReferenceNumber: "REC-NEW", CreatedAt: "2026-04-01T00:00:00Z", Status: "resolved", RespondedAt: "2026-04-02T08:00:00Z"},
	}

	complaints := normalizeComplaints(records, discardLogger())
	require.Len(t, complaints, 2)
	assert.Equal(t, "REC-NEW", complaints[0].ReferenceNumber)
	require.NotNil(t, complaints[0].RespondedAt)
	assert.Equal(t, time.April, complaints[0].RespondedAt.Month())
	assert.Equal(t, "pending", complaints[1].Status)
}
