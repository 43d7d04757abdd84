package handlers

import (
	"errors"

	"studesk/internal/core/services"
	"studesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StudentHandler handles student identity endpoints
type StudentHandler struct {
	studentService *services.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

// IdentityBody represents the identity triple body
type IdentityBody struct {
	Email  string `json:"email"`
	Apogee string `json:"apogee"`
	CIN    string `json:"cin"`
}

// Validate checks the identity triple against the student registry.
// A non-matching triple is not an error: the contract answers
// {valid: false, student: null} with status 200.
// @Summary Validate student identity
// @Description Match email, apogee and CIN against the registry
// @Tags Students
// @Accept json
// @Produce json
// @Param body body IdentityBody true "Identity triple"
// @Success 200 {object} map[string]interface{}
// @Router /students/validate [post]
func (h *StudentHandler) Validate(c *fiber.Ctx) error {
	var req IdentityBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	student, err := h.studentService.Validate(c.Context(), &services.ValidateIdentityInput{
		Email:  req.Email,
		Apogee: req.Apogee,
		CIN:    req.CIN,
	})
	if err != nil {
		if errors.Is(err, services.ErrStudentNotMatched) {
			return c.JSON(fiber.Map{"valid": false, "student": nil})
		}
		return response.InternalServerError(c, "Validation failed")
	}

	return c.JSON(fiber.Map{"valid": true, "student": student})
}

// Demands lists a student's prior requests
// @Summary List student demands
// @Description List prior requests for a verified identity, newest first
// @Tags Students
// @Accept json
// @Produce json
// @Param body body IdentityBody true "Identity triple"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /students/demands [post]
func (h *StudentHandler) Demands(c *fiber.Ctx) error {
	var req IdentityBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	demands, err := h.studentService.Demands(c.Context(), &services.ValidateIdentityInput{
		Email:  req.Email,
		Apogee: req.Apogee,
		CIN:    req.CIN,
	})
	if err != nil {
		if errors.Is(err, services.ErrStudentNotMatched) {
			return response.NotFound(c, "No matching student")
		}
		return response.InternalServerError(c, "Failed to list demands")
	}

	return c.JSON(fiber.Map{"demands": demands})
}

// HistoryBody represents the history request body
type HistoryBody struct {
	StudentID uint `json:"studentId"`
}

// History returns a student's enrollment history grouped by year
// @Summary Student academic history
// @Description Enrollment years with their semesters for one student
// @Tags Students
// @Accept json
// @Produce json
// @Param body body HistoryBody true "Student reference"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /students/history [post]
func (h *StudentHandler) History(c *fiber.Ctx) error {
	var req HistoryBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.StudentID == 0 {
		return response.BadRequest(c, "Student is required")
	}

	history, err := h.studentService.History(c.Context(), req.StudentID)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to load history")
	}

	return c.JSON(fiber.Map{"history": history})
}
