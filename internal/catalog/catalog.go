// Package catalog holds the static 21-day workout program table and the
// shop item list. Both are read-only at runtime; the client renders them
// directly and the engine consumes them for calorie math and purchases.
package catalog

// Exercise is a single step of a workout program. Rest steps and steps
// without a MET value burn no calories but still count toward duration.
type Exercise struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationSeconds int     `json:"durationSeconds"`
	MET             float64 `json:"met,omitempty"`
	IsRest          bool    `json:"isRest,omitempty"`
	VideoQuery      string  `json:"videoQuery,omitempty"`
}

type Program struct {
	ID          string     `json:"id"`
	Day         int        `json:"day"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

// DurationSeconds returns the total length of the program including rests.
func (p Program) DurationSeconds() int {
	total := 0
	for _, ex := range p.Exercises {
		total += ex.DurationSeconds
	}
	return total
}

// ShopItem is a purchasable cosmetic for the penguin. Price is paid in XP.
type ShopItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"` // hat, glasses, accessory, background
	Price         int    `json:"price"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
	RequiredLevel int    `json:"requiredLevel,omitempty"`
}

// ProgramForDay returns the program for a 1-based program day. Days outside
// [1, 21] fall back to day 1's program; callers that care about program
// completion check the day themselves.
func ProgramForDay(day int) Program {
	if day < 1 || day > len(programs) {
		return programs[0]
	}
	return programs[day-1]
}

// ProgramDays returns the length of the program in days.
func ProgramDays() int {
	return len(programs)
}

// Programs returns the full 21-day table in day order.
func Programs() []Program {
	return programs
}

// ShopItems returns the full shop catalog.
func ShopItems() []ShopItem {
	return shopItems
}

// ShopItemByID looks up a shop item; ok is false for unknown ids.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, item := range shopItems {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
