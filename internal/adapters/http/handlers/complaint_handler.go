package handlers

import (
	"errors"

	"studesk/internal/core/services"
	"studesk/internal/pkg/pagination"
	"studesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

// CreateComplaintBody represents create complaint body
type CreateComplaintBody struct {
	Email                string `json:"email"`
	Apogee               string `json:"apogee"`
	CIN                  string `json:"cin"`
	Subject              string `json:"subject"`
	Description          string `json:"description"`
	RelatedRequestNumber string `json:"relatedRequestNumber,omitempty"`
}

// Create creates a new complaint
// @Summary Create complaint
// @Description Submit a new complaint with the identity triple
// @Tags Complaints
// @Accept json
// @Produce json
// @Param body body CreateComplaintBody true "Complaint data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var req CreateComplaintBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	complaint, err := h.complaintService.Create(c.Context(), &services.CreateComplaintInput{
		Email:                req.Email,
		Apogee:               req.Apogee,
		CIN:                  req.CIN,
		Subject:              req.Subject,
		Description:          req.Description,
		RelatedRequestNumber: req.RelatedRequestNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadIdentityInput):
			return response.BadRequest(c, "Invalid identity fields")
		case errors.Is(err, services.ErrMissingSubject):
			return response.BadRequest(c, "Subject and description are required")
		default:
			return response.InternalServerError(c, "Failed to create complaint")
		}
	}

	return response.CreatedOK(c, fiber.Map{
		"id":              complaint.ID,
		"referenceNumber": complaint.ReferenceNumber,
	})
}

// List lists complaints
// @Summary List complaints
// @Description List complaints, newest first
// @Tags Complaints
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} pagination.Response
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	complaints, total, err := h.complaintService.List(c.Context(), params.Page, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list complaints")
	}

	return c.JSON(pagination.NewResponse(complaints, params, total))
}

// Get returns a complaint with its related request snapshot
// @Summary Get complaint detail
// @Description Get one complaint with nested student and related request
// @Tags Complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} services.ComplaintDetail
// @Failure 404 {object} response.Response
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid complaint ID")
	}

	detail, err := h.complaintService.GetDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			return response.NotFound(c, "Complaint not found")
		}
		return response.InternalServerError(c, "Failed to load complaint")
	}

	return c.JSON(detail)
}

// RespondBody represents complaint response body
type RespondBody struct {
	Response string `json:"response"`
	AdminID  *uint  `json:"adminId,omitempty"`
}

// Respond records the admin response and resolves the complaint
// @Summary Respond to complaint
// @Description Record a response; resolves the complaint (Admin only)
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param body body RespondBody true "Response data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /complaints/{id}/response [post]
func (h *ComplaintHandler) Respond(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid complaint ID")
	}

	var req RespondBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.RespondInput{
		Response: req.Response,
		AdminID:  req.AdminID,
	}
	if input.AdminID == nil {
		if adminID, ok := c.Locals("adminID").(uint); ok {
			input.AdminID = &adminID
		}
	}

	if _, err := h.complaintService.Respond(c.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyResponse):
			return response.BadRequest(c, "Response text is required")
		case errors.Is(err, services.ErrComplaintNotFound):
			return response.NotFound(c, "Complaint not found")
		case errors.Is(err, services.ErrAlreadyResolved):
			return response.Conflict(c, "Complaint already resolved")
		default:
			return response.InternalServerError(c, "Failed to record response")
		}
	}

	return response.OK(c, nil)
}
