package domain

// statusGraph is the source of truth for legal user-requested transitions,
// kept as data so every status has a defined (possibly empty) row.
// submitted -> under_review is deliberately absent: that hop is never offered
// to the user, it is fired as a chained follow-up right after new -> submitted.
var statusGraph = map[TenderStatus][]TenderStatus{
	TenderStatusNew:         {TenderStatusSubmitted},
	TenderStatusSubmitted:   {TenderStatusNew}, // manual revert
	TenderStatusUnderReview: {TenderStatusWon, TenderStatusLost},
	TenderStatusWon:         {TenderStatusInProgress},
	TenderStatusInProgress:  {TenderStatusCompleted},
	TenderStatusCompleted:   {},
	TenderStatusLost:        {},
}

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []TenderStatus{
	TenderStatusNew,
	TenderStatusSubmitted,
	TenderStatusUnderReview,
	TenderStatusWon,
	TenderStatusInProgress,
	TenderStatusCompleted,
	TenderStatusLost,
}

// LegalNextStates returns the statuses a tender in status s may be moved to.
// An empty result means s is terminal.
func LegalNextStates(s TenderStatus) []TenderStatus {
	next := statusGraph[s]
	out := make([]TenderStatus, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to TenderStatus) bool {
	for _, s := range statusGraph[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s TenderStatus) Valid() bool {
	_, ok := statusGraph[s]
	return ok
}

func (s TenderStatus) Terminal() bool {
	next, ok := statusGraph[s]
	return ok && len(next) == 0
}
