package pet

import (
	"errors"
	"testing"

	"github.com/penguinfit/penguinfit-backend/internal/catalog"
)

var testCap = catalog.ShopItem{
	ID: "cap-red", Name: "Blue Training Cap", Category: "hat",
	Price: 200, RequiredLevel: 10,
}

func TestBuy(t *testing.T) {
	p := NewPetState()
	p.XP = 250

	if err := Buy(&p, testCap); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if p.XP != 50 {
		t.Fatalf("XP = %d, want 50 after deduction", p.XP)
	}
	if !p.Owns("cap-red") {
		t.Fatal("item not added to owned set")
	}
}

func TestBuyInsufficientXP(t *testing.T) {
	p := NewPetState()
	p.XP = 199

	if err := Buy(&p, testCap); !errors.Is(err, ErrInsufficientXP) {
		t.Fatalf("err = %v, want ErrInsufficientXP", err)
	}
	if p.XP != 199 || len(p.OwnedItemIDs) != 0 {
		t.Fatalf("failed buy mutated state: xp=%d owned=%v", p.XP, p.OwnedItemIDs)
	}
}

func TestBuyAlreadyOwned(t *testing.T) {
	p := NewPetState()
	p.XP = 1000
	p.OwnedItemIDs = []string{"cap-red"}

	if err := Buy(&p, testCap); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("err = %v, want ErrAlreadyOwned", err)
	}
	if p.XP != 1000 {
		t.Fatalf("XP = %d, want 1000 untouched", p.XP)
	}
}

func TestEquip(t *testing.T) {
	p := NewPetState()
	p.FriendshipLevel = 10
	p.OwnedItemIDs = []string{"cap-red"}

	if err := Equip(&p, SlotHat, &testCap); err != nil {
		t.Fatalf("Equip: %v", err)
	}
	if p.EquippedItems[SlotHat] != "cap-red" {
		t.Fatalf("EquippedItems = %v", p.EquippedItems)
	}

	// Clearing a slot needs no checks.
	if err := Equip(&p, SlotHat, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := p.EquippedItems[SlotHat]; ok {
		t.Fatal("slot not cleared")
	}
}

func TestEquipValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*PetState)
		slot  Slot
		item  *catalog.ShopItem
		want  error
	}{
		{
			name:  "not owned",
			setup: func(p *PetState) { p.FriendshipLevel = 10 },
			slot:  SlotHat, item: &testCap, want: ErrItemNotOwned,
		},
		{
			name:  "level too low",
			setup: func(p *PetState) { p.OwnedItemIDs = []string{"cap-red"} },
			slot:  SlotHat, item: &testCap, want: ErrLevelTooLow,
		},
		{
			name:  "invalid slot",
			setup: func(p *PetState) {},
			slot:  Slot("shoes"), item: &testCap, want: ErrInvalidSlot,
		},
		{
			name: "wrong slot",
			setup: func(p *PetState) {
				p.FriendshipLevel = 10
				p.OwnedItemIDs = []string{"cap-red"}
			},
			slot: SlotGlasses, item: &testCap, want: ErrWrongSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPetState()
			tt.setup(&p)
			if err := Equip(&p, tt.slot, tt.item); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(p.EquippedItems) != 0 {
				t.Fatalf("failed equip mutated slots: %v", p.EquippedItems)
			}
		})
	}
}
