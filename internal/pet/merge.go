package pet

// MergeFetched reconciles a freshly fetched remote document with the state
// the client persisted locally, as done once at startup after sign-in. The
// remote copy wins wholesale except for the calendar-day-scoped counters:
// a stale remote snapshot must not silently re-open a tap allowance the
// user already exhausted today, so for those the fresher side wins and a
// same-day tie takes the maximum of the two.
func MergeFetched(localUser, remoteUser UserState, localPet, remotePet PetState, today string) (UserState, PetState) {
	user := remoteUser
	p := remotePet

	localToday := localPet.LastTouchDate == today
	remoteToday := remotePet.LastTouchDate == today

	switch {
	case localToday && remoteToday:
		p.DailyTouchXP = max(localPet.DailyTouchXP, remotePet.DailyTouchXP)
		p.WorkoutsCompletedToday = max(localPet.WorkoutsCompletedToday, remotePet.WorkoutsCompletedToday)
	case localToday:
		p.DailyTouchXP = localPet.DailyTouchXP
		p.WorkoutsCompletedToday = localPet.WorkoutsCompletedToday
		p.LastTouchDate = localPet.LastTouchDate
	case remoteToday:
		// Remote values already in place.
	default:
		p.DailyTouchXP = 0
		p.WorkoutsCompletedToday = 0
	}

	p.MigrateName()
	return user, p
}
