package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RequestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, RequestPending.CanTransitionTo(RequestAccepted))
	assert.True(t, RequestPending.CanTransitionTo(RequestRejected))

	// accepted and rejected are terminal
	assert.False(t, RequestAccepted.CanTransitionTo(RequestRejected))
	assert.False(t, RequestAccepted.CanTransitionTo(RequestPending))
	assert.False(t, RequestRejected.CanTransitionTo(RequestAccepted))

	// pending cannot loop back onto itself
	assert.False(t, RequestPending.CanTransitionTo(RequestPending))
}

func Test_DocumentType_IsValid(t *testing.T) {
	for _, dt := range DocumentTypes {
		assert.True(t, dt.IsValid(), string(dt))
	}
	assert.False(t, DocumentType("diplome").IsValid())
	assert.False(t, DocumentType("").IsValid())
}

func Test_RequiredFields(t *testing.T) {
	assert.Empty(t, RequiredFields(DocAttestationScolarite))
	assert.Equal(t, []string{"academicYear"}, RequiredFields(DocAttestationReussite))
	assert.Equal(t, []string{"academicYear", "semester"}, RequiredFields(DocReleveNotes))
	assert.Contains(t, RequiredFields(DocConventionStage), "internshipCompany")
	assert.Equal(t, []string{"relatedRequestNumber"}, RequiredFields(DocReclamation))
}

func Test_DocumentDetails_Validate(t *testing.T) {
	assert.Empty(t, ScolariteDetails{}.Validate())

	assert.Equal(t, []string{"academicYear"}, ReussiteDetails{}.Validate())
	assert.Empty(t, ReussiteDetails{AcademicYear: "2024-2025"}.Validate())

	missing := ReleveDetails{AcademicYear: "2024-2025"}.Validate()
	assert.Equal(t, []string{"semester"}, missing)

	stage := StageDetails{Company: "ACME", StartDate: "2025-02-01", EndDate: "2025-06-30", Subject: "Internal tooling"}
	assert.Empty(t, stage.Validate())
	assert.Len(t, StageDetails{}.Validate(), 4)

	assert.Equal(t, []string{"relatedRequestNumber"}, ReclamationDetails{}.Validate())
}
