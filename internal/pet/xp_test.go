package pet

import "testing"

func TestApplyXPAccumulates(t *testing.T) {
	p := NewPetState()
	ApplyXP(&p, 5)
	ApplyXP(&p, 5)
	if p.XP != 10 {
		t.Fatalf("XP = %d, want 10", p.XP)
	}
	if p.FriendshipLevel != 1 || p.JustLeveledUp {
		t.Fatalf("unexpected level-up: level=%d justLeveledUp=%v", p.FriendshipLevel, p.JustLeveledUp)
	}
}

func TestApplyXPLevelUp(t *testing.T) {
	p := NewPetState()
	p.XP = 95
	ApplyXP(&p, 5)

	if p.FriendshipLevel != 2 {
		t.Fatalf("FriendshipLevel = %d, want 2", p.FriendshipLevel)
	}
	if p.XPToNextLevel != 150 {
		t.Fatalf("XPToNextLevel = %d, want 150", p.XPToNextLevel)
	}
	if !p.JustLeveledUp {
		t.Fatal("JustLeveledUp not set")
	}
}

func TestApplyXPSingleCheckNotLoop(t *testing.T) {
	// A grant that crosses two thresholds in one call advances exactly one
	// level: 95 + 100 = 195 >= 100 levels once, and the leftover 195 >= 150
	// is deliberately not re-checked.
	p := NewPetState()
	p.XP = 95
	ApplyXP(&p, 100)

	if p.FriendshipLevel != 2 {
		t.Fatalf("FriendshipLevel = %d, want exactly 2", p.FriendshipLevel)
	}
	if p.XP != 195 {
		t.Fatalf("XP = %d, want 195", p.XP)
	}
	if p.XPToNextLevel != 150 {
		t.Fatalf("XPToNextLevel = %d, want 150", p.XPToNextLevel)
	}
}

func TestApplyXPThresholdFloors(t *testing.T) {
	p := NewPetState()
	p.XPToNextLevel = 225
	p.XP = 225
	ApplyXP(&p, 0)

	// 225 * 1.5 = 337.5 floors to 337.
	if p.XPToNextLevel != 337 {
		t.Fatalf("XPToNextLevel = %d, want 337", p.XPToNextLevel)
	}
}

func TestApplyXPNeverDecreases(t *testing.T) {
	p := NewPetState()
	for _, amount := range []int{0, 5, 100, 1000, -5} {
		xp, level, next := p.XP, p.FriendshipLevel, p.XPToNextLevel
		ApplyXP(&p, amount)
		if p.XP < xp || p.FriendshipLevel < level || p.XPToNextLevel < next {
			t.Fatalf("ApplyXP(%d) decreased state: xp %d->%d level %d->%d next %d->%d",
				amount, xp, p.XP, level, p.FriendshipLevel, next, p.XPToNextLevel)
		}
	}
}
