package pet

import (
	"math"
	"time"

	"github.com/penguinfit/penguinfit-backend/internal/catalog"
)

// WorkoutResult reports the outcome of a completed workout.
type WorkoutResult struct {
	Session   WorkoutSession `json:"session"`
	XPGained  int            `json:"xp_gained"`
	LeveledUp bool           `json:"leveled_up"`
	NewBadges []string       `json:"new_badges"`
}

// SessionCalories estimates the calories burned by a program at the given
// body weight using the standard MET formula
// met * 3.5 * weightKg / 200 per minute. Rest steps and exercises without
// a MET value burn nothing but still count toward the session duration.
// The sum is rounded once at the end.
func SessionCalories(program catalog.Program, weightKg float64) (calories int, durationSeconds int) {
	total := 0.0
	for _, ex := range program.Exercises {
		durationSeconds += ex.DurationSeconds
		if ex.IsRest || ex.MET <= 0 {
			continue
		}
		minutes := float64(ex.DurationSeconds) / 60
		total += ex.MET * 3.5 * weightKg / 200 * minutes
	}
	return int(math.Round(total)), durationSeconds
}

// CompleteWorkout records a finished session for the given program: history
// append, 100 XP, streak and program-day advance, the day-scoped workout
// counter, and badge awards.
//
// The streak increments on every completion regardless of calendar gaps
// since the previous session; the 21-day ceiling on CurrentDay is likewise
// not enforced here. Both are preserved client behaviors.
func CompleteWorkout(u *UserState, p *PetState, program catalog.Program, now time.Time) WorkoutResult {
	calories, duration := SessionCalories(program, u.WeightKg)

	session := WorkoutSession{
		Day:             u.CurrentDay,
		CompletedAt:     now,
		WorkoutID:       program.ID,
		Calories:        calories,
		DurationSeconds: duration,
	}
	u.History = append(u.History, session)

	levelBefore := p.FriendshipLevel
	ApplyXP(p, WorkoutXP)

	u.Streak++
	u.CurrentDay++

	today := CalendarDay(now)
	if p.LastTouchDate == today {
		p.WorkoutsCompletedToday++
	} else {
		p.WorkoutsCompletedToday = 1
		p.DailyTouchXP = 0
	}
	p.LastTouchDate = today
	p.Mood = MoodHappy
	p.LastInteractionTime = now

	return WorkoutResult{
		Session:   session,
		XPGained:  WorkoutXP,
		LeveledUp: p.FriendshipLevel > levelBefore,
		NewBadges: awardBadges(u, p),
	}
}

// awardBadges inserts any newly earned badges and returns them. Triggers
// are exact-equality matches on the post-update counters, not thresholds:
// with +1 increments the difference is unobservable, but a future balance
// change that skips a value would skip its badge too.
func awardBadges(u *UserState, p *PetState) []string {
	var earned []string
	if u.Streak == 3 {
		earned = appendBadge(u, earned, BadgeStreak3)
	}
	if u.Streak == 7 {
		earned = appendBadge(u, earned, BadgeStreak7)
	}
	if p.FriendshipLevel == 5 {
		earned = appendBadge(u, earned, BadgePipiFriend)
	}
	return earned
}

func appendBadge(u *UserState, earned []string, id string) []string {
	if u.HasBadge(id) {
		return earned
	}
	u.Badges = append(u.Badges, id)
	return append(earned, id)
}
