package pet

// ApplyXP adds a non-negative XP amount and performs a single level-up
// threshold check. The check is deliberately not a loop: a grant large
// enough to cross two thresholds in one call still advances exactly one
// level. That matches the shipped client behavior, so keep it a single
// check unless product says otherwise.
func ApplyXP(p *PetState, amount int) {
	if amount < 0 {
		return
	}
	p.XP += amount
	if p.XP >= p.XPToNextLevel {
		p.FriendshipLevel++
		p.XPToNextLevel = int(float64(p.XPToNextLevel) * LevelGrowthFactor)
		p.JustLeveledUp = true
	}
}
