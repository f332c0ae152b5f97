package pet

import (
	"testing"
	"time"
)

func TestMoodForElapsed(t *testing.T) {
	tests := []struct {
		hours float64
		want  Mood
	}{
		{0, MoodHappy},
		{2.9, MoodHappy},
		{3.0, MoodSad},
		{3.1, MoodSad},
		{7.9, MoodSad},
		{8.0, MoodHungry},
		{8.1, MoodHungry},
		{23.9, MoodHungry},
		{24.0, MoodSleeping},
		{24.1, MoodSleeping},
		{100, MoodSleeping},
	}
	for _, tt := range tests {
		elapsed := time.Duration(tt.hours * float64(time.Hour))
		if got := MoodForElapsed(elapsed); got != tt.want {
			t.Errorf("MoodForElapsed(%.1fh) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestRefreshMoodReportsChange(t *testing.T) {
	p := NewPetState()
	p.Mood = MoodHappy
	p.LastInteractionTime = noon

	if changed := RefreshMood(&p, noon.Add(time.Hour)); changed {
		t.Fatal("mood should not change within 3 hours")
	}
	if changed := RefreshMood(&p, noon.Add(5*time.Hour)); !changed || p.Mood != MoodSad {
		t.Fatalf("after 5h: changed=%v mood=%q, want sad", changed, p.Mood)
	}
	// Same gap again: no redundant write.
	if changed := RefreshMood(&p, noon.Add(5*time.Hour)); changed {
		t.Fatal("second refresh at same gap should report no change")
	}
}

func TestRefreshMoodOnlyTouchesMood(t *testing.T) {
	p := NewPetState()
	p.XP = 42
	p.FriendshipLevel = 3
	p.LastInteractionTime = noon

	RefreshMood(&p, noon.Add(30*time.Hour))
	if p.Mood != MoodSleeping {
		t.Fatalf("mood = %q, want sleeping", p.Mood)
	}
	if p.XP != 42 || p.FriendshipLevel != 3 {
		t.Fatalf("RefreshMood mutated xp/level: xp=%d level=%d", p.XP, p.FriendshipLevel)
	}
	if !p.LastInteractionTime.Equal(noon) {
		t.Fatal("RefreshMood must not update LastInteractionTime")
	}
}
