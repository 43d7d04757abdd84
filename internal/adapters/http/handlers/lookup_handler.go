package handlers

import (
	"log"

	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LookupHandler serves the master lookup endpoints as plain string
// arrays, the shape form selects consume directly
type LookupHandler struct {
	lookupRepo *repositories.LookupRepository
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookupRepo *repositories.LookupRepository) *LookupHandler {
	return &LookupHandler{
		lookupRepo: lookupRepo,
	}
}

// AcademicYears returns academic year labels
// @Summary List academic years
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /academic-years [get]
func (h *LookupHandler) AcademicYears(c *fiber.Ctx) error {
	labels, err := h.lookupRepo.ListAcademicYears(c.Context())
	if err != nil {
		log.Printf("⚠️ Failed to list academic years: %v", err)
		return response.InternalServerError(c, "Failed to list academic years")
	}
	return c.JSON(labels)
}

// Semesters returns semester labels
// @Summary List semesters
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /semesters [get]
func (h *LookupHandler) Semesters(c *fiber.Ctx) error {
	labels, err := h.lookupRepo.ListSemesters(c.Context())
	if err != nil {
		log.Printf("⚠️ Failed to list semesters: %v", err)
		return response.InternalServerError(c, "Failed to list semesters")
	}
	return c.JSON(labels)
}

// Supervisors returns supervisor names
// @Summary List supervisors
// @Tags Lookups
// @Produce json
// @Success 200 {array} string
// @Router /supervisors [get]
func (h *LookupHandler) Supervisors(c *fiber.Ctx) error {
	names, err := h.lookupRepo.ListSupervisors(c.Context())
	if err != nil {
		log.Printf("⚠️ Failed to list supervisors: %v", err)
		return response.InternalServerError(c, "Failed to list supervisors")
	}
	return c.JSON(names)
}
