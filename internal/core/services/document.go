package services

import (
	"bytes"
	"fmt"
	"time"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/core/domain"
)

// BuildDocument renders the downloadable artifact for a request and
// returns the payload with a suggested filename. The output is a plain
// UTF-8 document; callers treat it as an opaque byte stream.
//
// Downloads are served regardless of request status. The status guard
// was removed deliberately so students can retrieve provisional copies
// while a request is pending.
func BuildDocument(request *models.DocumentRequest) ([]byte, string) {
	var buf bytes.Buffer

	title := documentTypeLabels[request.DocumentType]
	if title == "" {
		title = request.DocumentType
	}

	fmt.Fprintln(&buf, "UNIVERSITÉ — SERVICE DE SCOLARITÉ")
	fmt.Fprintln(&buf, "=================================")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%s\n", title)
	fmt.Fprintf(&buf, "Référence : %s\n", request.ReferenceNumber)
	fmt.Fprintf(&buf, "Étudiant  : %s (Apogée %s)\n", request.Student.FullName(), request.Student.Apogee)
	fmt.Fprintf(&buf, "Statut    : %s\n", request.Status)
	fmt.Fprintln(&buf)

	switch domain.DocumentType(request.DocumentType) {
	case domain.DocAttestationReussite:
		fmt.Fprintf(&buf, "Année universitaire : %s\n", request.AcademicYear)
	case domain.DocReleveNotes:
		fmt.Fprintf(&buf, "Année universitaire : %s\n", request.AcademicYear)
		fmt.Fprintf(&buf, "Semestre            : %s\n", request.Semester)
	case domain.DocConventionStage:
		fmt.Fprintf(&buf, "Entreprise  : %s\n", request.InternshipCompany)
		fmt.Fprintf(&buf, "Période     : %s — %s\n", request.InternshipStartDate, request.InternshipEndDate)
		fmt.Fprintf(&buf, "Sujet       : %s\n", request.InternshipSubject)
		if request.InternshipSupervisor != "" {
			fmt.Fprintf(&buf, "Encadrant   : %s\n", request.InternshipSupervisor)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Délivré le %s\n", time.Now().Format("02/01/2006"))

	filename := fmt.Sprintf("%s_%s.txt", request.DocumentType, request.ReferenceNumber)
	return buf.Bytes(), filename
}
