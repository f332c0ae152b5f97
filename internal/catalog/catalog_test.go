package catalog

import "testing"

func TestProgramForDayFallback(t *testing.T) {
	day1 := ProgramForDay(1)
	if day1.ID != "day-1-core" {
		t.Fatalf("day 1 program = %q", day1.ID)
	}

	// Out-of-range days fall back to day 1 by definition, not as an error.
	for _, day := range []int{0, -3, 22, 100} {
		if got := ProgramForDay(day); got.ID != day1.ID {
			t.Errorf("ProgramForDay(%d) = %q, want day-1 fallback", day, got.ID)
		}
	}
}

func TestProgramTableComplete(t *testing.T) {
	if ProgramDays() != 21 {
		t.Fatalf("ProgramDays() = %d, want 21", ProgramDays())
	}
	for i, p := range Programs() {
		if p.Day != i+1 {
			t.Errorf("programs[%d].Day = %d, want %d", i, p.Day, i+1)
		}
		if p.ID == "" || p.Title == "" || len(p.Exercises) == 0 {
			t.Errorf("day %d program incomplete: %+v", i+1, p)
		}
		if p.DurationSeconds() <= 0 {
			t.Errorf("day %d has no duration", i+1)
		}
	}
}

func TestShopItemByID(t *testing.T) {
	item, ok := ShopItemByID("dumbbell")
	if !ok {
		t.Fatal("dumbbell missing from catalog")
	}
	if item.Category != "accessory" || item.Price != 300 || item.RequiredLevel != 3 {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, ok := ShopItemByID("jetpack"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestShopCategoriesValid(t *testing.T) {
	valid := map[string]bool{"hat": true, "glasses": true, "accessory": true, "background": true}
	for _, item := range ShopItems() {
		if !valid[item.Category] {
			t.Errorf("item %s has unknown category %q", item.ID, item.Category)
		}
		if item.Price <= 0 {
			t.Errorf("item %s has non-positive price", item.ID)
		}
	}
}
