package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/penguinfit/penguinfit-backend/internal/catalog"
	"github.com/penguinfit/penguinfit-backend/internal/dto"
	"github.com/penguinfit/penguinfit-backend/internal/models"
	"github.com/penguinfit/penguinfit-backend/internal/pet"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound  = errors.New("shop item not found")
	ErrEmptyName     = errors.New("pet name cannot be empty")
	ErrInvalidWeight = errors.New("weight must be a positive number of kilograms")
)

// PlayerService owns the per-user state document and runs every pet engine
// operation against it: load, apply the pure transition, persist, respond.
type PlayerService struct {
	db   *gorm.DB
	subs *SubscriptionService
}

func NewPlayerService(db *gorm.DB, subs *SubscriptionService) *PlayerService {
	return &PlayerService{db: db, subs: subs}
}

// loaded bundles a decoded state row so operations can mutate and persist it.
type loaded struct {
	row  models.PlayerState
	user pet.UserState
	pet  pet.PetState
}

func (s *PlayerService) load(userID uuid.UUID) (*loaded, error) {
	var row models.PlayerState
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		l := &loaded{
			row:  models.PlayerState{ID: uuid.New(), UserID: userID},
			user: pet.NewUserState(),
			pet:  pet.NewPetState(),
		}
		if err := s.persist(l); err != nil {
			return nil, err
		}
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	l := &loaded{row: row, user: pet.NewUserState(), pet: pet.NewPetState()}
	if len(row.UserState) > 0 {
		if err := json.Unmarshal(row.UserState, &l.user); err != nil {
			return nil, fmt.Errorf("corrupt userState document: %w", err)
		}
	}
	if len(row.Penguin) > 0 {
		if err := json.Unmarshal(row.Penguin, &l.pet); err != nil {
			return nil, fmt.Errorf("corrupt penguin document: %w", err)
		}
	}

	// One-time legacy default name migration, applied wherever state is read.
	l.pet.MigrateName()
	return l, nil
}

func (s *PlayerService) persist(l *loaded) error {
	userJSON, err := json.Marshal(l.user)
	if err != nil {
		return fmt.Errorf("failed to encode userState: %w", err)
	}
	petJSON, err := json.Marshal(l.pet)
	if err != nil {
		return fmt.Errorf("failed to encode penguin: %w", err)
	}

	l.row.UserState = datatypes.JSON(userJSON)
	l.row.Penguin = datatypes.JSON(petJSON)
	if err := s.db.Save(&l.row).Error; err != nil {
		return fmt.Errorf("failed to persist player state: %w", err)
	}
	return nil
}

func (s *PlayerService) document(l *loaded, now time.Time) dto.StateDocument {
	// hasPremium is never trusted from the stored blob; it derives from the
	// subscription table on every read.
	l.user.HasPremium = s.subs.HasPremium(l.row.UserID, now)
	return dto.StateDocument{
		UserState:       l.user,
		Penguin:         l.pet,
		UpdatedAt:       l.row.UpdatedAt,
		ProgramComplete: l.user.CurrentDay > catalog.ProgramDays(),
	}
}

// Fetch returns the stored document, the app-start read.
func (s *PlayerService) Fetch(userID uuid.UUID, now time.Time) (dto.StateDocument, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Restore reconciles the client's locally persisted state with the stored
// document (remote wins except same-day counters) and persists the result.
func (s *PlayerService) Restore(userID uuid.UUID, req *dto.RestoreRequest, now time.Time) (dto.StateDocument, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	l.user, l.pet = pet.MergeFetched(req.UserState, l.user, req.Penguin, l.pet, pet.CalendarDay(now))
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Mirror is the client's fire-and-forget push: each side of the document is
// replaced wholesale, last write wins.
func (s *PlayerService) Mirror(userID uuid.UUID, req *dto.MirrorRequest, now time.Time) (dto.StateDocument, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	l.user = req.UserState
	l.pet = req.Penguin
	l.pet.MigrateName()
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Interact handles one tap/pet of the penguin.
func (s *PlayerService) Interact(userID uuid.UUID, now time.Time) (dto.InteractResponse, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.InteractResponse{}, err
	}

	result := pet.Interact(&l.pet, now)
	if err := s.persist(l); err != nil {
		return dto.InteractResponse{}, err
	}
	return dto.InteractResponse{InteractResult: result, State: s.document(l, now)}, nil
}

// RefreshMood recomputes mood decay; the row is only written when the mood
// actually changed.
func (s *PlayerService) RefreshMood(userID uuid.UUID, now time.Time) (dto.MoodResponse, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.MoodResponse{}, err
	}

	changed := pet.RefreshMood(&l.pet, now)
	if changed {
		if err := s.persist(l); err != nil {
			return dto.MoodResponse{}, err
		}
	}
	return dto.MoodResponse{Mood: l.pet.Mood, Changed: changed, State: s.document(l, now)}, nil
}

// CompleteWorkout records a session for the user's current program day.
func (s *PlayerService) CompleteWorkout(userID uuid.UUID, now time.Time) (dto.WorkoutResponse, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.WorkoutResponse{}, err
	}

	program := catalog.ProgramForDay(l.user.CurrentDay)
	result := pet.CompleteWorkout(&l.user, &l.pet, program, now)
	if err := s.persist(l); err != nil {
		return dto.WorkoutResponse{}, err
	}
	return dto.WorkoutResponse{WorkoutResult: result, State: s.document(l, now)}, nil
}

// Buy purchases a catalog item with XP.
func (s *PlayerService) Buy(userID uuid.UUID, itemID string, now time.Time) (dto.StateDocument, error) {
	item, ok := catalog.ShopItemByID(itemID)
	if !ok {
		return dto.StateDocument{}, ErrItemNotFound
	}

	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	if err := pet.Buy(&l.pet, item); err != nil {
		return dto.StateDocument{}, err
	}
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Equip places an owned item into a slot, or clears the slot for an empty
// item id.
func (s *PlayerService) Equip(userID uuid.UUID, slot pet.Slot, itemID string, now time.Time) (dto.StateDocument, error) {
	var item *catalog.ShopItem
	if itemID != "" {
		found, ok := catalog.ShopItemByID(itemID)
		if !ok {
			return dto.StateDocument{}, ErrItemNotFound
		}
		item = &found
	}

	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	if err := pet.Equip(&l.pet, slot, item); err != nil {
		return dto.StateDocument{}, err
	}
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Rename sets the pet's display name.
func (s *PlayerService) Rename(userID uuid.UUID, name string, now time.Time) (dto.StateDocument, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dto.StateDocument{}, ErrEmptyName
	}

	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	l.pet.Name = name
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// SetWeight updates the body weight used for calorie estimation.
func (s *PlayerService) SetWeight(userID uuid.UUID, weightKg float64, now time.Time) (dto.StateDocument, error) {
	if weightKg <= 0 || weightKg > 500 {
		return dto.StateDocument{}, ErrInvalidWeight
	}

	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	l.user.WeightKg = weightKg
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Reset puts the whole document back to first-launch defaults.
func (s *PlayerService) Reset(userID uuid.UUID, now time.Time) (dto.StateDocument, error) {
	l, err := s.load(userID)
	if err != nil {
		return dto.StateDocument{}, err
	}

	l.user = pet.NewUserState()
	l.pet = pet.NewPetState()
	if err := s.persist(l); err != nil {
		return dto.StateDocument{}, err
	}
	return s.document(l, now), nil
}

// Badges returns the earned badge set.
func (s *PlayerService) Badges(userID uuid.UUID) ([]string, error) {
	l, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return l.user.Badges, nil
}

// History returns the append-only workout session log.
func (s *PlayerService) History(userID uuid.UUID) ([]pet.WorkoutSession, error) {
	l, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return l.user.History, nil
}
