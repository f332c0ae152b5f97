package pet

import (
	"testing"
	"time"
)

var noon = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestInteractDailyCap(t *testing.T) {
	p := NewPetState()

	// Base allowance is 25 XP: five rewarded taps, then nothing.
	for i := 1; i <= 5; i++ {
		res := Interact(&p, noon)
		if res.XPGained != TapXP {
			t.Fatalf("tap %d: XPGained = %d, want %d", i, res.XPGained, TapXP)
		}
		if p.Mood != MoodHappy {
			t.Fatalf("tap %d: mood = %q, want happy", i, p.Mood)
		}
	}

	res := Interact(&p, noon)
	if res.XPGained != 0 || !res.CapReached {
		t.Fatalf("6th tap: got %+v, want no XP and cap reached", res)
	}
	if p.Mood != MoodHappy {
		t.Fatalf("6th tap: mood = %q, want happy even when capped", p.Mood)
	}
	if p.XP != 25 {
		t.Fatalf("XP = %d, want 25", p.XP)
	}
}

func TestInteractCapRaisedByWorkout(t *testing.T) {
	p := NewPetState()
	p.LastTouchDate = CalendarDay(noon)
	p.WorkoutsCompletedToday = 1

	// One workout raises the allowance to 75 XP = 15 rewarded taps.
	for i := 1; i <= 15; i++ {
		if res := Interact(&p, noon); res.XPGained != TapXP {
			t.Fatalf("tap %d: XPGained = %d, want %d", i, res.XPGained, TapXP)
		}
	}
	if res := Interact(&p, noon); !res.CapReached {
		t.Fatalf("16th tap should hit the 75 XP cap, got %+v", res)
	}
	if p.DailyTouchXP != 75 {
		t.Fatalf("DailyTouchXP = %d, want 75", p.DailyTouchXP)
	}
}

func TestInteractDayRollover(t *testing.T) {
	p := NewPetState()
	p.DailyTouchXP = 25
	p.WorkoutsCompletedToday = 2
	p.LastTouchDate = "2026-03-13"

	res := Interact(&p, noon)
	if res.XPGained != TapXP {
		t.Fatalf("XPGained = %d, want %d after rollover", res.XPGained, TapXP)
	}
	if p.DailyTouchXP != TapXP {
		t.Fatalf("DailyTouchXP = %d, want %d", p.DailyTouchXP, TapXP)
	}
	if p.WorkoutsCompletedToday != 0 {
		t.Fatalf("WorkoutsCompletedToday = %d, want 0", p.WorkoutsCompletedToday)
	}
	if p.LastTouchDate != "2026-03-14" {
		t.Fatalf("LastTouchDate = %q, want 2026-03-14", p.LastTouchDate)
	}
}

func TestInteractUpdatesInteractionTime(t *testing.T) {
	p := NewPetState()
	p.DailyTouchXP = 25
	p.LastTouchDate = CalendarDay(noon)

	Interact(&p, noon)
	if !p.LastInteractionTime.Equal(noon) {
		t.Fatalf("LastInteractionTime = %v, want %v even when capped", p.LastInteractionTime, noon)
	}
}
