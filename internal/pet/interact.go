package pet

import "time"

// InteractResult reports what a single tap/pet did.
type InteractResult struct {
	XPGained   int  `json:"xp_gained"`
	CapReached bool `json:"cap_reached"`
	LeveledUp  bool `json:"leveled_up"`
}

// Interact handles one tap/pet of the penguin. The tap is always a positive
// interaction (mood becomes happy, interaction time updates) but XP is only
// granted while the day's tap allowance has room. The allowance is
// 25 + 50 per workout completed today, so each workout is worth ten more
// rewarded taps.
func Interact(p *PetState, now time.Time) InteractResult {
	today := CalendarDay(now)
	touchXP, workouts := p.effectiveDailyCounters(today)

	p.Mood = MoodHappy
	p.LastInteractionTime = now

	maxTouchXP := BaseDailyTouchXP + workouts*TouchXPPerWorkout
	if touchXP >= maxTouchXP {
		// Allowance exhausted: record the (possibly rolled-over) day and
		// counters, grant nothing.
		p.DailyTouchXP = touchXP
		p.WorkoutsCompletedToday = workouts
		p.LastTouchDate = today
		return InteractResult{CapReached: true}
	}

	levelBefore := p.FriendshipLevel
	ApplyXP(p, TapXP)
	p.DailyTouchXP = touchXP + TapXP
	p.WorkoutsCompletedToday = workouts
	p.LastTouchDate = today

	return InteractResult{XPGained: TapXP, LeveledUp: p.FriendshipLevel > levelBefore}
}
