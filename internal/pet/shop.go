package pet

import (
	"errors"

	"github.com/penguinfit/penguinfit-backend/internal/catalog"
)

var (
	ErrInsufficientXP = errors.New("not enough XP for this item")
	ErrAlreadyOwned   = errors.New("item already owned")
	ErrItemNotOwned   = errors.New("item not owned")
	ErrLevelTooLow    = errors.New("friendship level too low for this item")
	ErrInvalidSlot    = errors.New("invalid equipment slot")
	ErrWrongSlot      = errors.New("item does not fit this slot")
)

// Buy purchases a shop item with XP. It fails without touching state when
// the XP balance is short or the item is already owned; on success the price
// is deducted and the item joins the owned set. Spending XP never lowers
// the friendship level or the next-level threshold.
func Buy(p *PetState, item catalog.ShopItem) error {
	if p.Owns(item.ID) {
		return ErrAlreadyOwned
	}
	if p.XP < item.Price {
		return ErrInsufficientXP
	}
	p.XP -= item.Price
	p.OwnedItemIDs = append(p.OwnedItemIDs, item.ID)
	return nil
}

// CanEquip reports whether the pet owns the item and has the friendship
// level it requires.
func CanEquip(p *PetState, item catalog.ShopItem) bool {
	return p.Owns(item.ID) && p.FriendshipLevel >= item.RequiredLevel
}

// Equip places an owned item into its slot, enforcing ownership and the
// item's required friendship level here rather than trusting the caller to
// have pre-checked. An empty itemID clears the slot unconditionally.
func Equip(p *PetState, slot Slot, item *catalog.ShopItem) error {
	if !ValidSlot(slot) {
		return ErrInvalidSlot
	}
	if item == nil {
		if p.EquippedItems != nil {
			delete(p.EquippedItems, slot)
		}
		return nil
	}
	if Slot(item.Category) != slot {
		return ErrWrongSlot
	}
	if !p.Owns(item.ID) {
		return ErrItemNotOwned
	}
	if p.FriendshipLevel < item.RequiredLevel {
		return ErrLevelTooLow
	}
	if p.EquippedItems == nil {
		p.EquippedItems = map[Slot]string{}
	}
	p.EquippedItems[slot] = item.ID
	return nil
}
