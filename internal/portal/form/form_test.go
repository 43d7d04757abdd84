package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studesk/internal/core/domain"
	"studesk/internal/portal/gateway"
)

type fakeSubmitter struct {
	requests   []gateway.CreateRequestInput
	complaints []gateway.CreateComplaintInput
	failErr    error
}

func (f *fakeSubmitter) CreateRequest(_ context.Context, input gateway.CreateRequestInput) (*gateway.CreateResult, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.requests = append(f.requests, input)
	return &gateway.CreateResult{ID: 1, ReferenceNumber: "REQ-TEST0001"}, nil
}

func (f *fakeSubmitter) CreateComplaint(_ context.Context, input gateway.CreateComplaintInput) (*gateway.CreateResult, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.complaints = append(f.complaints, input)
	return &gateway.CreateResult{ID: 2, ReferenceNumber: "REC-TEST0001"}, nil
}

var amina = &gateway.Student{
	ID: 1, Email: "amina.elfassi@univ.ma", Apogee: "20250001", CIN: "AB123456",
	FirstName: "Amina", LastName: "El Fassi",
}

func verifiedForm(submitter Submitter) *Form {
	f := NewForm(submitter)
	f.SetIdentity(amina.Email, amina.Apogee, amina.CIN)
	f.MarkVerified(amina)
	return f
}

func Test_Form_LockedUntilVerified(t *testing.T) {
	f := NewForm(&fakeSubmitter{})
	assert.Equal(t, StageUnverified, f.Stage())

	err := f.ChooseType(domain.DocReleveNotes)
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.False(t, f.CanSubmit())

	_, err = f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotVerified)
}

func Test_Form_VerifyThenType(t *testing.T) {
	f := verifiedForm(&fakeSubmitter{})
	assert.Equal(t, StageVerifiedNoType, f.Stage())
	assert.False(t, f.CanSubmit())

	require.NoError(t, f.ChooseType(domain.DocAttestationScolarite))
	assert.Equal(t, StageVerifiedTyped, f.Stage())

	// attestation_scolarite needs no extra fields
	assert.True(t, f.CanSubmit())
}

func Test_Form_RequiredFieldsGateSubmit(t *testing.T) {
	f := verifiedForm(&fakeSubmitter{})
	require.NoError(t, f.ChooseType(domain.DocReleveNotes))

	assert.False(t, f.CanSubmit())
	assert.ElementsMatch(t, []string{"academicYear", "semester"}, f.MissingFields())

	f.SetField("academicYear", "2025-2026")
	assert.False(t, f.CanSubmit())

	f.SetField("semester", "S3")
	assert.True(t, f.CanSubmit())
}

func Test_Form_IdentityEditDropsVerificationAndType(t *testing.T) {
	f := verifiedForm(&fakeSubmitter{})
	require.NoError(t, f.ChooseType(domain.DocReleveNotes))
	f.SetField("academicYear", "2025-2026")

	// Changing any part of the verified triple locks the form again
	f.SetIdentity(amina.Email, "20259999", amina.CIN)
	assert.Equal(t, StageUnverified, f.Stage())
	assert.Empty(t, string(f.DocumentType()))
	assert.Empty(t, f.Field("academicYear"))
}

func Test_Form_SwitchingTypeClearsFields(t *testing.T) {
	f := verifiedForm(&fakeSubmitter{})
	require.NoError(t, f.ChooseType(domain.DocReleveNotes))
	f.SetField("academicYear", "2025-2026")
	f.SetField("semester", "S3")

	require.NoError(t, f.ChooseType(domain.DocConventionStage))
	assert.Empty(t, f.Field("academicYear"))
	assert.False(t, f.CanSubmit())
}

func Test_Form_SubmitRequest_ThenFullReset(t *testing.T) {
	submitter := &fakeSubmitter{}
	f := verifiedForm(submitter)
	require.NoError(t, f.ChooseType(domain.DocReleveNotes))
	f.SetField("academicYear", "2025-2026")
	f.SetField("semester", "S3")

	result, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "REQ-TEST0001", result.ReferenceNumber)

	require.Len(t, submitter.requests, 1)
	sent := submitter.requests[0]
	assert.Equal(t, amina.ID, sent.StudentID)
	assert.Equal(t, "releve_notes", sent.DocumentType)
	assert.Equal(t, "S3", sent.Semester)

	// Everything is cleared, including the identity
	assert.Equal(t, StageUnverified, f.Stage())
	assert.Equal(t, gateway.Identity{}, f.Identity())
	assert.Nil(t, f.Student())
}

func Test_Form_Reclamation_RequiresReference_RoutesToComplaints(t *testing.T) {
	submitter := &fakeSubmitter{}
	f := verifiedForm(submitter)
	require.NoError(t, f.ChooseType(domain.DocReclamation))

	f.SetField("subject", "Retard de traitement")
	f.SetField("description", "Ma demande est en attente depuis un mois.")
	assert.False(t, f.CanSubmit(), "missing related reference must disable submit")

	f.SetField("relatedRequestNumber", "REQ-1234ABCD")
	assert.True(t, f.CanSubmit())

	result, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "REC-TEST0001", result.ReferenceNumber)

	// The reclamation went through the complaints endpoint, not requests
	assert.Empty(t, submitter.requests)
	require.Len(t, submitter.complaints, 1)
	sent := submitter.complaints[0]
	assert.Equal(t, amina.Email, sent.Email)
	assert.Equal(t, "REQ-1234ABCD", sent.RelatedRequestNumber)
}

func Test_Form_FailedSubmitKeepsState(t *testing.T) {
	submitter := &fakeSubmitter{failErr: errors.New("backend unavailable")}
	f := verifiedForm(submitter)
	require.NoError(t, f.ChooseType(domain.DocAttestationReussite))
	f.SetField("academicYear", "2024-2025")

	_, err := f.Submit(context.Background())
	require.Error(t, err)

	// Prior state intact for a retry
	assert.Equal(t, StageVerifiedTyped, f.Stage())
	assert.Equal(t, "2024-2025", f.Field("academicYear"))
	assert.True(t, f.CanSubmit())
}

func Test_Form_InvalidType(t *testing.T) {
	f := verifiedForm(&fakeSubmitter{})
	err := f.ChooseType(domain.DocumentType("diplome_magique"))
	assert.ErrorIs(t, err, ErrInvalidType)
	assert.Equal(t, StageVerifiedNoType, f.Stage())
}
