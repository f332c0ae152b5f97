package pet

import (
	"math"
	"testing"
	"time"

	"github.com/penguinfit/penguinfit-backend/internal/catalog"
)

func testProgram() catalog.Program {
	return catalog.Program{
		ID:  "day-5-core",
		Day: 5,
		Exercises: []catalog.Exercise{
			{ID: "ex-1", Name: "Crunches", DurationSeconds: 30, MET: 5.0},
			{ID: "rest-1", Name: "Rest & Prepare", DurationSeconds: 10, IsRest: true},
			{ID: "ex-2", Name: "Plank", DurationSeconds: 30},
		},
	}
}

func TestSessionCalories(t *testing.T) {
	// Single MET exercise: 5.0 * 3.5 * 70 / 200 * 0.5 = 30.625, rounded 31.
	// Rest and MET-less steps burn nothing but add duration.
	calories, duration := SessionCalories(testProgram(), 70)
	if want := int(math.Round(30.625)); calories != want {
		t.Fatalf("calories = %d, want %d", calories, want)
	}
	if duration != 70 {
		t.Fatalf("duration = %d, want 70", duration)
	}
}

func TestCompleteWorkoutAdvancesState(t *testing.T) {
	u := NewUserState()
	u.CurrentDay = 5
	p := NewPetState()

	res := CompleteWorkout(&u, &p, testProgram(), noon)

	if u.Streak != 1 || u.CurrentDay != 6 {
		t.Fatalf("streak=%d currentDay=%d, want 1 and 6", u.Streak, u.CurrentDay)
	}
	if len(u.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(u.History))
	}
	s := u.History[0]
	if s.Day != 5 || s.WorkoutID != "day-5-core" || !s.CompletedAt.Equal(noon) {
		t.Fatalf("unexpected session: %+v", s)
	}
	if res.XPGained != WorkoutXP || p.XP != WorkoutXP {
		t.Fatalf("XPGained=%d petXP=%d, want %d", res.XPGained, p.XP, WorkoutXP)
	}
	if !res.LeveledUp || p.FriendshipLevel != 2 {
		t.Fatalf("100 XP from level 1 should level up: %+v level=%d", res, p.FriendshipLevel)
	}
	if p.WorkoutsCompletedToday != 1 || p.LastTouchDate != CalendarDay(noon) {
		t.Fatalf("day counters: workouts=%d date=%q", p.WorkoutsCompletedToday, p.LastTouchDate)
	}
	if p.Mood != MoodHappy {
		t.Fatalf("mood = %q, want happy", p.Mood)
	}
}

func TestCompleteWorkoutRollsOverDayCounters(t *testing.T) {
	u := NewUserState()
	p := NewPetState()
	p.LastTouchDate = "2026-03-13"
	p.DailyTouchXP = 75
	p.WorkoutsCompletedToday = 2

	CompleteWorkout(&u, &p, testProgram(), noon)

	if p.WorkoutsCompletedToday != 1 {
		t.Fatalf("WorkoutsCompletedToday = %d, want reset to 1", p.WorkoutsCompletedToday)
	}
	if p.DailyTouchXP != 0 {
		t.Fatalf("DailyTouchXP = %d, want 0 after rollover", p.DailyTouchXP)
	}
}

func TestStreakBadges(t *testing.T) {
	u := NewUserState()
	p := NewPetState()

	for i := 1; i <= 8; i++ {
		res := CompleteWorkout(&u, &p, testProgram(), noon.Add(time.Duration(i)*24*time.Hour))

		switch i {
		case 3:
			if len(res.NewBadges) == 0 || res.NewBadges[0] != BadgeStreak3 {
				t.Fatalf("workout 3: NewBadges = %v, want [%s]", res.NewBadges, BadgeStreak3)
			}
		case 7:
			if !containsString(res.NewBadges, BadgeStreak7) {
				t.Fatalf("workout 7: NewBadges = %v, want %s", res.NewBadges, BadgeStreak7)
			}
		}
	}

	if !u.HasBadge(BadgeStreak3) || !u.HasBadge(BadgeStreak7) {
		t.Fatalf("badges = %v, want both streak badges", u.Badges)
	}
	if count(u.Badges, BadgeStreak3) != 1 {
		t.Fatalf("badge %s duplicated: %v", BadgeStreak3, u.Badges)
	}
}

func TestFriendBadgeOnExactLevel(t *testing.T) {
	u := NewUserState()
	p := NewPetState()
	p.FriendshipLevel = 4
	p.XP = 999
	p.XPToNextLevel = 1000

	res := CompleteWorkout(&u, &p, testProgram(), noon)
	if p.FriendshipLevel != 5 {
		t.Fatalf("level = %d, want 5", p.FriendshipLevel)
	}
	if !containsString(res.NewBadges, BadgePipiFriend) {
		t.Fatalf("NewBadges = %v, want %s", res.NewBadges, BadgePipiFriend)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func count(list []string, want string) int {
	n := 0
	for _, s := range list {
		if s == want {
			n++
		}
	}
	return n
}
