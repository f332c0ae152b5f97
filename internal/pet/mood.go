package pet

import "time"

// moodBands maps hours since the last positive interaction to a mood.
// Half-open intervals, first match wins.
var moodBands = []struct {
	upToHours float64
	mood      Mood
}{
	{3, MoodHappy},
	{8, MoodSad},
	{24, MoodHungry},
}

// MoodForElapsed returns the mood implied by the time since the last
// interaction: under 3h happy, under 8h sad, under 24h hungry, then asleep.
func MoodForElapsed(elapsed time.Duration) Mood {
	hours := elapsed.Hours()
	for _, band := range moodBands {
		if hours < band.upToHours {
			return band.mood
		}
	}
	return MoodSleeping
}

// RefreshMood recomputes the decayed mood and applies it. It returns whether
// the mood actually changed so callers can skip redundant writes and mirror
// syncs on every timer tick. Nothing but Mood is ever touched.
func RefreshMood(p *PetState, now time.Time) bool {
	next := MoodForElapsed(now.Sub(p.LastInteractionTime))
	if next == p.Mood {
		return false
	}
	p.Mood = next
	return true
}
