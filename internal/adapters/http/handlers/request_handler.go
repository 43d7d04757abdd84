package handlers

import (
	"errors"
	"strconv"

	"studesk/internal/core/services"
	"studesk/internal/pkg/pagination"
	"studesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles document request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// parseID parses the :id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// CreateRequestBody represents create request body
type CreateRequestBody struct {
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

// Create creates a new document request
// @Summary Create document request
// @Description Submit a new document request for a verified student
// @Tags Requests
// @Accept json
// @Produce json
// @Param body body CreateRequestBody true "Request data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var req CreateRequestBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.StudentID == 0 {
		return response.BadRequest(c, "Student is required")
	}
	if req.DocumentType == "" {
		return response.BadRequest(c, "Document type is required")
	}

	input := &services.CreateRequestInput{
		StudentID:            req.StudentID,
		DocumentType:         req.DocumentType,
		AcademicYear:         req.AcademicYear,
		Semester:             req.Semester,
		InternshipCompany:    req.InternshipCompany,
		InternshipStartDate:  req.InternshipStartDate,
		InternshipEndDate:    req.InternshipEndDate,
		InternshipSubject:    req.InternshipSubject,
		InternshipSupervisor: req.InternshipSupervisor,
	}

	request, err := h.requestService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudentNotFound):
			return response.NotFound(c, "Student not found")
		case errors.Is(err, services.ErrInvalidDocumentType):
			return response.BadRequest(c, "Invalid document type")
		case errors.Is(err, services.ErrReclamationNotHere):
			return response.BadRequest(c, "Reclamations must be submitted as complaints")
		case errors.Is(err, services.ErrMissingFields):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to create request")
		}
	}

	return response.CreatedOK(c, fiber.Map{
		"id":              request.ID,
		"referenceNumber": request.ReferenceNumber,
	})
}

// List lists document requests
// @Summary List document requests
// @Description List document requests, newest first
// @Tags Requests
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Filter by status"
// @Success 200 {object} services.ListOutput
// @Router /requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	output, err := h.requestService.List(c.Context(), &services.ListInput{
		Page:   params.Page,
		Limit:  params.Limit,
		Status: c.Query("status"),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list requests")
	}

	return c.JSON(output)
}

// UpdateStatusBody represents status transition body
type UpdateStatusBody struct {
	Status          string `json:"status"`
	AdminID         *uint  `json:"adminId,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// UpdateStatus applies a status transition
// @Summary Update request status
// @Description Accept or reject a pending request (Admin only)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body UpdateStatusBody true "Transition data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /requests/{id}/status [post]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var req UpdateStatusBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateStatusInput{
		Status:          req.Status,
		AdminID:         req.AdminID,
		RejectionReason: req.RejectionReason,
	}
	if input.AdminID == nil {
		if adminID, ok := c.Locals("adminID").(uint); ok {
			input.AdminID = &adminID
		}
	}

	if _, err := h.requestService.UpdateStatus(c.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status transition")
		case errors.Is(err, services.ErrRequestAlreadyDecided):
			return response.Conflict(c, "Request already processed")
		default:
			return response.InternalServerError(c, "Failed to update status")
		}
	}

	return response.OK(c, nil)
}

// Download streams the generated document
// @Summary Download document
// @Description Download the generated document for a request
// @Tags Requests
// @Produce octet-stream
// @Param id path int true "Request ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /requests/{id}/download [get]
func (h *RequestHandler) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	request, err := h.requestService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return response.NotFound(c, "Request not found")
		}
		return response.InternalServerError(c, "Failed to load request")
	}

	payload, filename := services.BuildDocument(request)

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}

// SendEmailBody represents manual notification body
type SendEmailBody struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

// SendEmail sends a manual notification about a request
// @Summary Send request notification
// @Description Mail the owning student about a request (Admin only)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body SendEmailBody true "Notification data"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /requests/{id}/send-email [post]
func (h *RequestHandler) SendEmail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var req SendEmailBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	output, err := h.requestService.SendEmail(c.Context(), id, &services.SendEmailInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return response.NotFound(c, "Request not found")
		}
		return response.InternalServerError(c, "Failed to send notification")
	}

	return response.OK(c, fiber.Map{
		"email":   output.Email,
		"sent":    output.Sent,
		"message": output.Message,
	})
}
