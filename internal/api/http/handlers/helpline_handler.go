package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safevoice/report-service/internal/api/dto"
	"github.com/safevoice/report-service/internal/service"
)

// HelplineHandler serves the read-only helpline directory.
type HelplineHandler struct {
	service *service.HelplineService
}

// NewHelplineHandler constructs handler.
func NewHelplineHandler(helplineService *service.HelplineService) *HelplineHandler {
	return &HelplineHandler{service: helplineService}
}

// Contacts GET /helpline/contacts.
func (h *HelplineHandler) Contacts(c *fiber.Ctx) error {
	contacts, err := h.service.ListContacts(c.UserContext(), c.Query("category"))
	if err != nil {
		return err
	}
	items := make([]dto.HelplineContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, dto.NewHelplineContactResponse(contact))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Resources GET /helpline/resources.
func (h *HelplineHandler) Resources(c *fiber.Ctx) error {
	resources, err := h.service.ListLegalResources(c.UserContext(), c.Query("category"))
	if err != nil {
		return err
	}
	items := make([]dto.LegalResourceResponse, 0, len(resources))
	for _, resource := range resources {
		items = append(items, dto.NewLegalResourceResponse(resource))
	}
	return c.JSON(fiber.Map{"data": items})
}
