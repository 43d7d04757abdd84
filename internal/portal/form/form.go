// Package form holds the document-request form state machine. The form
// only opens up as the identity is verified, and only submits when the
// chosen document type's fields are complete.
package form

import (
	"context"
	"errors"
	"fmt"

	"studesk/internal/core/domain"
	"studesk/internal/portal/gateway"
)

// Stage is how far the form has progressed
type Stage int

const (
	// StageUnverified: identity not confirmed, type picker locked
	StageUnverified Stage = iota
	// StageVerifiedNoType: identity confirmed, no document type chosen
	StageVerifiedNoType
	// StageVerifiedTyped: type chosen, type-specific fields in play
	StageVerifiedTyped
)

func (s Stage) String() string {
	switch s {
	case StageVerifiedNoType:
		return "verified"
	case StageVerifiedTyped:
		return "typed"
	default:
		return "unverified"
	}
}

var (
	ErrNotVerified    = errors.New("identity not verified")
	ErrNoType         = errors.New("no document type chosen")
	ErrInvalidType    = errors.New("unknown document type")
	ErrNotSubmittable = errors.New("form is not complete")
)

// Submitter is the slice of the gateway the form needs
type Submitter interface {
	CreateRequest(ctx context.Context, input gateway.CreateRequestInput) (*gateway.CreateResult, error)
	CreateComplaint(ctx context.Context, input gateway.CreateComplaintInput) (*gateway.CreateResult, error)
}

// Form is the request/complaint submission state machine
type Form struct {
	submitter Submitter

	identity gateway.Identity
	student  *gateway.Student
	docType  domain.DocumentType
	fields   map[string]string
}

// NewForm creates an empty, unverified form
func NewForm(submitter Submitter) *Form {
	return &Form{
		submitter: submitter,
		fields:    make(map[string]string),
	}
}

// Stage derives the current stage from what has been confirmed so far
func (f *Form) Stage() Stage {
	switch {
	case f.student == nil:
		return StageUnverified
	case f.docType == "":
		return StageVerifiedNoType
	default:
		return StageVerifiedTyped
	}
}

// SetIdentity records an identity edit. Any change to a verified triple
// drops the verification and the chosen type with it.
func (f *Form) SetIdentity(email, apogee, cin string) {
	next := gateway.Identity{Email: email, Apogee: apogee, CIN: cin}
	if f.student != nil && next != f.identity {
		f.student = nil
		f.docType = ""
		f.fields = make(map[string]string)
	}
	f.identity = next
}

// Identity returns the current triple
func (f *Form) Identity() gateway.Identity {
	return f.identity
}

// MarkVerified accepts the backend's confirmation of the current identity,
// typically wired to the verifier's result callback
func (f *Form) MarkVerified(student *gateway.Student) {
	if student == nil {
		f.MarkUnverified()
		return
	}
	f.student = student
}

// MarkUnverified drops the verification, chosen type and fields
func (f *Form) MarkUnverified() {
	f.student = nil
	f.docType = ""
	f.fields = make(map[string]string)
}

// Student returns the verified student, nil before verification
func (f *Form) Student() *gateway.Student {
	return f.student
}

// ChooseType picks the document type. Switching types clears the fields
// of the previous one.
func (f *Form) ChooseType(t domain.DocumentType) error {
	if f.student == nil {
		return ErrNotVerified
	}
	if !t.IsValid() {
		return ErrInvalidType
	}
	if t != f.docType {
		f.fields = make(map[string]string)
	}
	f.docType = t
	return nil
}

// DocumentType returns the chosen type, empty before one is chosen
func (f *Form) DocumentType() domain.DocumentType {
	return f.docType
}

// SetField records a type-specific field value
func (f *Form) SetField(name, value string) {
	f.fields[name] = value
}

// Field returns a recorded field value
func (f *Form) Field(name string) string {
	return f.fields[name]
}

// requiredFields extends the per-type table with the complaint body
// fields a reclamation also needs
func (f *Form) requiredFields() []string {
	required := domain.RequiredFields(f.docType)
	if f.docType == domain.DocReclamation {
		required = append(required, "subject", "description")
	}
	return required
}

// MissingFields lists the required fields still empty for the chosen type
func (f *Form) MissingFields() []string {
	if f.docType == "" {
		return nil
	}
	var missing []string
	for _, name := range f.requiredFields() {
		if f.fields[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// CanSubmit reports whether the form is complete: verified identity,
// chosen type, all required fields filled
func (f *Form) CanSubmit() bool {
	return f.Stage() == StageVerifiedTyped && len(f.MissingFields()) == 0
}

// Submit sends the form through the backend. Reclamations travel through
// the complaints endpoint; everything else creates a document request.
// A successful submit resets the form to its initial state; a failed one
// leaves everything intact for correction.
func (f *Form) Submit(ctx context.Context) (*gateway.CreateResult, error) {
	switch f.Stage() {
	case StageUnverified:
		return nil, ErrNotVerified
	case StageVerifiedNoType:
		return nil, ErrNoType
	}
	if missing := f.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrNotSubmittable, missing)
	}

	var result *gateway.CreateResult
	var err error
	if f.docType == domain.DocReclamation {
		result, err = f.submitter.CreateComplaint(ctx, gateway.CreateComplaintInput{
			Email:                f.identity.Email,
			Apogee:               f.identity.Apogee,
			CIN:                  f.identity.CIN,
			Subject:              f.fields["subject"],
			Description:          f.fields["description"],
			RelatedRequestNumber: f.fields["relatedRequestNumber"],
		})
	} else {
		result, err = f.submitter.CreateRequest(ctx, gateway.CreateRequestInput{
			StudentID:    f.student.ID,
			DocumentType: string(f.docType),

			AcademicYear:         f.fields["academicYear"],
			Semester:             f.fields["semester"],
			InternshipCompany:    f.fields["internshipCompany"],
			InternshipStartDate:  f.fields["internshipStartDate"],
			InternshipEndDate:    f.fields["internshipEndDate"],
			InternshipSubject:    f.fields["internshipSubject"],
			InternshipSupervisor: f.fields["internshipSupervisor"],
		})
	}
	if err != nil {
		return nil, err
	}

	f.reset()
	return result, nil
}

func (f *Form) reset() {
	f.identity = gateway.Identity{}
	f.student = nil
	f.docType = ""
	f.fields = make(map[string]string)
}
