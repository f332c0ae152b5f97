package pet

import "testing"

func TestMergeFetchedBothToday(t *testing.T) {
	today := "2026-03-14"

	local := NewPetState()
	local.DailyTouchXP = 25
	local.WorkoutsCompletedToday = 0
	local.LastTouchDate = today

	remote := NewPetState()
	remote.DailyTouchXP = 10
	remote.WorkoutsCompletedToday = 1
	remote.LastTouchDate = today
	remote.XP = 500

	_, merged := MergeFetched(NewUserState(), NewUserState(), local, remote, today)

	// Remote wins overall, daily counters take the max of the two sides.
	if merged.XP != 500 {
		t.Fatalf("XP = %d, want remote value 500", merged.XP)
	}
	if merged.DailyTouchXP != 25 {
		t.Fatalf("DailyTouchXP = %d, want max(25, 10)", merged.DailyTouchXP)
	}
	if merged.WorkoutsCompletedToday != 1 {
		t.Fatalf("WorkoutsCompletedToday = %d, want max(0, 1)", merged.WorkoutsCompletedToday)
	}
}

func TestMergeFetchedOnlyLocalToday(t *testing.T) {
	today := "2026-03-14"

	local := NewPetState()
	local.DailyTouchXP = 75
	local.WorkoutsCompletedToday = 1
	local.LastTouchDate = today

	remote := NewPetState()
	remote.DailyTouchXP = 25
	remote.WorkoutsCompletedToday = 3
	remote.LastTouchDate = "2026-03-10"

	_, merged := MergeFetched(NewUserState(), NewUserState(), local, remote, today)

	if merged.DailyTouchXP != 75 || merged.WorkoutsCompletedToday != 1 {
		t.Fatalf("stale remote overrode today's counters: %+v", merged)
	}
	if merged.LastTouchDate != today {
		t.Fatalf("LastTouchDate = %q, want %q", merged.LastTouchDate, today)
	}
}

func TestMergeFetchedNeitherToday(t *testing.T) {
	local := NewPetState()
	local.DailyTouchXP = 75
	local.LastTouchDate = "2026-03-12"

	remote := NewPetState()
	remote.DailyTouchXP = 25
	remote.WorkoutsCompletedToday = 2
	remote.LastTouchDate = "2026-03-13"

	_, merged := MergeFetched(NewUserState(), NewUserState(), local, remote, "2026-03-14")

	if merged.DailyTouchXP != 0 || merged.WorkoutsCompletedToday != 0 {
		t.Fatalf("stale counters not zeroed: %+v", merged)
	}
}

func TestMergeFetchedMigratesLegacyName(t *testing.T) {
	remote := NewPetState()
	remote.Name = "Pengo"

	_, merged := MergeFetched(NewUserState(), NewUserState(), NewPetState(), remote, "2026-03-14")
	if merged.Name != DefaultName {
		t.Fatalf("Name = %q, want %q", merged.Name, DefaultName)
	}
}

func TestMigrateName(t *testing.T) {
	p := NewPetState()
	p.Name = "Sir Waddles"
	if p.MigrateName() {
		t.Fatal("custom names must not be renamed")
	}

	p.Name = "pengo"
	if !p.MigrateName() || p.Name != DefaultName {
		t.Fatalf("legacy name not migrated: %q", p.Name)
	}
}
