package dto

import (
	"time"

	"github.com/penguinfit/penguinfit-backend/internal/pet"
)

// StateDocument is the wire shape of the player document, identical to the
// blob the client persists locally: `{userState, penguin, updatedAt}`.
type StateDocument struct {
	UserState pet.UserState `json:"userState"`
	Penguin   pet.PetState  `json:"penguin"`
	UpdatedAt time.Time     `json:"updatedAt"`

	// ProgramComplete flags that the 21-day plan has been finished, so
	// clients can stop re-serving the day-1 fallback program.
	ProgramComplete bool `json:"program_complete"`
}

// MirrorRequest is the client's fire-and-forget state push. Each field
// replaces the stored side wholesale.
type MirrorRequest struct {
	UserState pet.UserState `json:"userState"`
	Penguin   pet.PetState  `json:"penguin"`
}

// RestoreRequest carries the client's locally persisted state for the
// startup fetch-and-merge.
type RestoreRequest struct {
	UserState pet.UserState `json:"userState"`
	Penguin   pet.PetState  `json:"penguin"`
}

type InteractResponse struct {
	pet.InteractResult
	State StateDocument `json:"state"`
}

type WorkoutResponse struct {
	pet.WorkoutResult
	State StateDocument `json:"state"`
}

type MoodResponse struct {
	Mood    pet.Mood      `json:"mood"`
	Changed bool          `json:"changed"`
	State   StateDocument `json:"state"`
}

type BuyRequest struct {
	ItemID string `json:"item_id"`
}

type EquipRequest struct {
	Slot   string `json:"slot"`
	ItemID string `json:"item_id"` // empty clears the slot
}

type RenameRequest struct {
	Name string `json:"name"`
}

type WeightRequest struct {
	WeightKg float64 `json:"weight_kg"`
}

type BadgesResponse struct {
	Badges []string `json:"badges"`
}

type HistoryResponse struct {
	History []pet.WorkoutSession `json:"history"`
}
