// Package pet implements the progression engine for Pipi the penguin:
// experience and leveling, the daily tap-XP allowance, mood decay, workout
// completion with calorie estimation, badges, and the cosmetic inventory.
//
// Everything in this package is a pure in-memory state transition. Callers
// own persistence and any remote mirroring of the resulting state.
package pet

import (
	"strings"
	"time"
)

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodHungry   Mood = "hungry"
	MoodSleeping Mood = "sleeping"
)

// Slot is a cosmetic equipment slot. Each slot holds at most one owned item.
type Slot string

const (
	SlotHat        Slot = "hat"
	SlotGlasses    Slot = "glasses"
	SlotAccessory  Slot = "accessory"
	SlotBackground Slot = "background"
)

// ValidSlot reports whether s is one of the four equipment slots.
func ValidSlot(s Slot) bool {
	switch s {
	case SlotHat, SlotGlasses, SlotAccessory, SlotBackground:
		return true
	}
	return false
}

const (
	// TapXP is granted per pet interaction, WorkoutXP per completed workout.
	TapXP     = 5
	WorkoutXP = 100

	// The daily tap allowance starts at BaseDailyTouchXP and grows by
	// TouchXPPerWorkout for every workout completed that day, so tapping
	// alone cannot farm XP but training unlocks more of it.
	BaseDailyTouchXP  = 25
	TouchXPPerWorkout = 50

	// InitialXPToNextLevel is the level-2 threshold; each level-up
	// multiplies the threshold by LevelGrowthFactor (floored).
	InitialXPToNextLevel = 100
	LevelGrowthFactor    = 1.5

	DefaultName     = "pipi"
	legacyName      = "pengo"
	DefaultWeightKg = 70

	// DateLayout is the calendar-day format used for rollover detection.
	DateLayout = "2006-01-02"
)

// Badge ids awarded by CompleteWorkout.
const (
	BadgeStreak3    = "streak-3"
	BadgeStreak7    = "streak-7"
	BadgePipiFriend = "pipi-friend"
)

// WorkoutSession is one completed workout in the user's history. History is
// append-only and never reordered or deduplicated.
type WorkoutSession struct {
	Day             int       `json:"day"`
	CompletedAt     time.Time `json:"completedAt"`
	WorkoutID       string    `json:"workoutId"`
	Calories        int       `json:"calories"`
	DurationSeconds int       `json:"durationSeconds"`
}

// PetState is Pipi's full record. DailyTouchXP and WorkoutsCompletedToday
// are only meaningful while LastTouchDate matches the current calendar day;
// stale values are treated as zero.
type PetState struct {
	Mood                   Mood            `json:"mood"`
	FriendshipLevel        int             `json:"friendshipLevel"`
	XP                     int             `json:"xp"`
	XPToNextLevel          int             `json:"xpToNextLevel"`
	Name                   string          `json:"name"`
	LastInteractionTime    time.Time       `json:"lastInteractionTime"`
	OwnedItemIDs           []string        `json:"ownedItemIds"`
	EquippedItems          map[Slot]string `json:"equippedItems"`
	DailyTouchXP           int             `json:"dailyTouchXp"`
	LastTouchDate          string          `json:"lastTouchDate"`
	WorkoutsCompletedToday int             `json:"workoutsCompletedToday"`

	// JustLeveledUp is a one-shot flag for the level-up celebration;
	// the client clears it after displaying.
	JustLeveledUp bool `json:"justLeveledUp"`
}

// UserState is the program-progress side of the record.
type UserState struct {
	Streak     int              `json:"streak"`
	CurrentDay int              `json:"currentDay"`
	HasPremium bool             `json:"hasPremium"`
	History    []WorkoutSession `json:"history"`
	Badges     []string         `json:"badges"`
	WeightKg   float64          `json:"weightKg"`
}

// NewPetState returns Pipi's first-launch defaults.
func NewPetState() PetState {
	return PetState{
		Mood:            MoodSad,
		FriendshipLevel: 1,
		XP:              0,
		XPToNextLevel:   InitialXPToNextLevel,
		Name:            DefaultName,
		OwnedItemIDs:    []string{},
		EquippedItems:   map[Slot]string{},
	}
}

// NewUserState returns the first-launch user defaults.
func NewUserState() UserState {
	return UserState{
		Streak:     0,
		CurrentDay: 1,
		HasPremium: false,
		History:    []WorkoutSession{},
		Badges:     []string{},
		WeightKg:   DefaultWeightKg,
	}
}

// MigrateName applies the one-time rename of the legacy default pet name.
// Returns true if the name changed.
func (p *PetState) MigrateName() bool {
	if strings.EqualFold(p.Name, legacyName) {
		p.Name = DefaultName
		return true
	}
	return false
}

// Owns reports whether the item id is in the owned set.
func (p *PetState) Owns(itemID string) bool {
	for _, id := range p.OwnedItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge id has been earned.
func (u *UserState) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// CalendarDay formats a timestamp as the rollover-detection day string.
func CalendarDay(t time.Time) string {
	return t.Format(DateLayout)
}

// effectiveDailyCounters returns the tap-XP and workout counters for the
// given day, treating values recorded under a different LastTouchDate as
// stale (day rollover) and therefore zero.
func (p *PetState) effectiveDailyCounters(today string) (touchXP, workouts int) {
	if p.LastTouchDate != today {
		return 0, 0
	}
	return p.DailyTouchXP, p.WorkoutsCompletedToday
}
