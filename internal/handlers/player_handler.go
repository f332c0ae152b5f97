package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/penguinfit/penguinfit-backend/internal/dto"
	"github.com/penguinfit/penguinfit-backend/internal/middleware"
	"github.com/penguinfit/penguinfit-backend/internal/pet"
	"github.com/penguinfit/penguinfit-backend/internal/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

func (h *PlayerHandler) userID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, err := middleware.UserID(c)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func serverError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

// Interact handles POST /pet/interact - one tap/pet of the penguin.
func (h *PlayerHandler) Interact(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	resp, err := h.playerService.Interact(userID, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to record interaction")
	}
	return c.JSON(resp)
}

// RefreshMood handles POST /pet/mood/refresh - the periodic mood decay tick.
func (h *PlayerHandler) RefreshMood(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	resp, err := h.playerService.RefreshMood(userID, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to refresh mood")
	}
	return c.JSON(resp)
}

// CompleteWorkout handles POST /workouts/complete for the current program day.
func (h *PlayerHandler) CompleteWorkout(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	resp, err := h.playerService.CompleteWorkout(userID, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to complete workout")
	}
	return c.JSON(resp)
}

// History handles GET /workouts/history.
func (h *PlayerHandler) History(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	history, err := h.playerService.History(userID)
	if err != nil {
		return serverError(c, "Failed to load history")
	}
	return c.JSON(dto.HistoryResponse{History: history})
}

// Badges handles GET /badges.
func (h *PlayerHandler) Badges(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	badges, err := h.playerService.Badges(userID)
	if err != nil {
		return serverError(c, "Failed to load badges")
	}
	return c.JSON(dto.BadgesResponse{Badges: badges})
}

// Buy handles POST /shop/buy.
func (h *PlayerHandler) Buy(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.BuyRequest
	if err := c.BodyParser(&req); err != nil || req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "item_id is required",
		})
	}

	state, err := h.playerService.Buy(userID, req.ItemID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, pet.ErrInsufficientXP), errors.Is(err, pet.ErrAlreadyOwned):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, "Failed to buy item")
	}
	return c.JSON(state)
}

// Equip handles POST /pet/equip. An empty item_id clears the slot.
func (h *PlayerHandler) Equip(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.EquipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.playerService.Equip(userID, pet.Slot(req.Slot), req.ItemID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, pet.ErrInvalidSlot), errors.Is(err, pet.ErrWrongSlot):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, pet.ErrItemNotOwned), errors.Is(err, pet.ErrLevelTooLow):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, "Failed to equip item")
	}
	return c.JSON(state)
}

// Rename handles POST /pet/rename.
func (h *PlayerHandler) Rename(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.playerService.Rename(userID, req.Name, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, "Failed to rename pet")
	}
	return c.JSON(state)
}

// SetWeight handles PUT /profile/weight.
func (h *PlayerHandler) SetWeight(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.WeightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.playerService.SetWeight(userID, req.WeightKg, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeight) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, "Failed to update weight")
	}
	return c.JSON(state)
}

// GetState handles GET /state - the app-start document fetch.
func (h *PlayerHandler) GetState(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	state, err := h.playerService.Fetch(userID, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to load state")
	}
	return c.JSON(state)
}

// Restore handles POST /state/restore - merge the client's local copy with
// the stored document after sign-in.
func (h *PlayerHandler) Restore(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.playerService.Restore(userID, &req, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to restore state")
	}
	return c.JSON(state)
}

// Mirror handles PUT /state - the client's best-effort state push.
func (h *PlayerHandler) Mirror(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.MirrorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	state, err := h.playerService.Mirror(userID, &req, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to sync state")
	}
	return c.JSON(state)
}

// Reset handles POST /state/reset - back to first-launch defaults.
func (h *PlayerHandler) Reset(c *fiber.Ctx) error {
	userID, ok := h.userID(c)
	if !ok {
		return unauthorized(c)
	}

	state, err := h.playerService.Reset(userID, time.Now().UTC())
	if err != nil {
		return serverError(c, "Failed to reset state")
	}
	return c.JSON(state)
}
