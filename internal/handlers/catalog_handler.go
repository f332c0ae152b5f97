package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/penguinfit/penguinfit-backend/internal/catalog"
	"github.com/penguinfit/penguinfit-backend/internal/dto"
)

// CatalogHandler serves the static program and shop tables.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Programs handles GET /catalog/programs - the full 21-day table.
func (h *CatalogHandler) Programs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"days":     catalog.ProgramDays(),
		"programs": catalog.Programs(),
	})
}

// ProgramForDay handles GET /catalog/programs/:day. Out-of-range days get
// the day-1 program, same as the engine's lookup fallback.
func (h *CatalogHandler) ProgramForDay(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "day must be a number",
		})
	}
	return c.JSON(catalog.ProgramForDay(day))
}

// ShopItems handles GET /catalog/shop.
func (h *CatalogHandler) ShopItems(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": catalog.ShopItems()})
}
