package domain

// DocumentType enumerates the artifacts a student can request.
// Reclamation is the special complaint kind and is routed to the
// complaints flow rather than the requests flow.
type DocumentType string

const (
	DocAttestationScolarite DocumentType = "attestation_scolarite"
	DocAttestationReussite  DocumentType = "attestation_reussite"
	DocReleveNotes          DocumentType = "releve_notes"
	DocConventionStage      DocumentType = "convention_stage"
	DocReclamation          DocumentType = "reclamation"
)

// DocumentTypes lists every selectable document type
var DocumentTypes = []DocumentType{
	DocAttestationScolarite,
	DocAttestationReussite,
	DocReleveNotes,
	DocConventionStage,
	DocReclamation,
}

// IsValid reports whether t is a known document type
func (t DocumentType) IsValid() bool {
	for _, dt := range DocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// RequestStatus represents the lifecycle state of a document request
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// IsValid reports whether s is a known request status
func (s RequestStatus) IsValid() bool {
	return s == RequestPending || s == RequestAccepted || s == RequestRejected
}

// CanTransitionTo enforces the pending-only transition rule:
// pending may move to accepted or rejected, both of which are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s != RequestPending {
		return false
	}
	return next == RequestAccepted || next == RequestRejected
}

// ComplaintStatus represents the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "pending"
	ComplaintResolved ComplaintStatus = "resolved"
)

// ============================================================
// Document details (tagged union per document kind)
// ============================================================

// DocumentDetails is implemented by the per-kind detail variants.
// Each variant carries only the fields its kind needs, replacing the
// ambiguous optional-field soup of the original submission payloads.
type DocumentDetails interface {
	Kind() DocumentType
	// Validate returns the missing/invalid field names, empty when complete.
	Validate() []string
}

// ScolariteDetails has no extra fields: an attestation de scolarité
// only needs the verified identity.
type ScolariteDetails struct{}

func (ScolariteDetails) Kind() DocumentType { return DocAttestationScolarite }
func (ScolariteDetails) Validate() []string { return nil }

// ReussiteDetails requires the academic year the attestation covers
type ReussiteDetails struct {
	AcademicYear string
}

func (ReussiteDetails) Kind() DocumentType { return DocAttestationReussite }
func (d ReussiteDetails) Validate() []string {
	if d.AcademicYear == "" {
		return []string{"academicYear"}
	}
	return nil
}

// ReleveDetails requires both the academic year and the semester
type ReleveDetails struct {
	AcademicYear string
	Semester     string
}

func (ReleveDetails) Kind() DocumentType { return DocReleveNotes }
func (d ReleveDetails) Validate() []string {
	var missing []string
	if d.AcademicYear == "" {
		missing = append(missing, "academicYear")
	}
	if d.Semester == "" {
		missing = append(missing, "semester")
	}
	return missing
}

// StageDetails carries the internship field group for a convention de stage
type StageDetails struct {
	Company    string
	StartDate  string
	EndDate    string
	Subject    string
	Supervisor string
}

func (StageDetails) Kind() DocumentType { return DocConventionStage }
func (d StageDetails) Validate() []string {
	var missing []string
	if d.Company == "" {
		missing = append(missing, "internshipCompany")
	}
	if d.StartDate == "" {
		missing = append(missing, "internshipStartDate")
	}
	if d.EndDate == "" {
		missing = append(missing, "internshipEndDate")
	}
	if d.Subject == "" {
		missing = append(missing, "internshipSubject")
	}
	return missing
}

// ReclamationDetails requires the reference of the request being contested
type ReclamationDetails struct {
	RelatedRequestNumber string
}

func (ReclamationDetails) Kind() DocumentType { return DocReclamation }
func (d ReclamationDetails) Validate() []string {
	if d.RelatedRequestNumber == "" {
		return []string{"relatedRequestNumber"}
	}
	return nil
}

// RequiredFields returns the field names a document type makes mandatory.
// Both the server-side create validation and the client form machine
// derive their rules from this single table.
func RequiredFields(t DocumentType) []string {
	switch t {
	case DocAttestationReussite:
		return []string{"academicYear"}
	case DocReleveNotes:
		return []string{"academicYear", "semester"}
	case DocConventionStage:
		return []string{"internshipCompany", "internshipStartDate", "internshipEndDate", "internshipSubject"}
	case DocReclamation:
		return []string{"relatedRequestNumber"}
	default:
		return nil
	}
}
