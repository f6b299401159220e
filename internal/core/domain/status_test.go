package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asaparov/tendercrm/internal/core/domain"
)

func TestLegalNextStates(t *testing.T) {
	tests := []struct {
		from domain.TenderStatus
		next []domain.TenderStatus
	}{
		{domain.TenderStatusNew, []domain.TenderStatus{domain.TenderStatusSubmitted}},
		{domain.TenderStatusSubmitted, []domain.TenderStatus{domain.TenderStatusNew}},
		{domain.TenderStatusUnderReview, []domain.TenderStatus{domain.TenderStatusWon, domain.TenderStatusLost}},
		{domain.TenderStatusWon, []domain.TenderStatus{domain.TenderStatusInProgress}},
		{domain.TenderStatusInProgress, []domain.TenderStatus{domain.TenderStatusCompleted}},
		{domain.TenderStatusCompleted, []domain.TenderStatus{}},
		{domain.TenderStatusLost, []domain.TenderStatus{}},
	}

	for _, test := range tests {
		t.Run(string(test.from), func(t *testing.T) {
			assert.Equal(t, test.next, domain.LegalNextStates(test.from))
		})
	}
}

// Every status has a defined row, and a status is terminal exactly when that
// row is empty.
func TestTerminalStates(t *testing.T) {
	terminal := map[domain.TenderStatus]bool{
		domain.TenderStatusCompleted: true,
		domain.TenderStatusLost:      true,
	}

	for _, s := range domain.AllStatuses {
		assert.True(t, s.Valid(), "status %s has no transition row", s)
		assert.Equal(t, terminal[s], s.Terminal(), "terminality of %s", s)
		assert.Equal(t, terminal[s], len(domain.LegalNextStates(s)) == 0, "next states of %s", s)
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, domain.CanTransition(domain.TenderStatusNew, domain.TenderStatusSubmitted))
	assert.True(t, domain.CanTransition(domain.TenderStatusSubmitted, domain.TenderStatusNew))

	// The review hop is chained, never user-requested.
	assert.False(t, domain.CanTransition(domain.TenderStatusSubmitted, domain.TenderStatusUnderReview))

	assert.False(t, domain.CanTransition(domain.TenderStatusNew, domain.TenderStatusWon))
	assert.False(t, domain.CanTransition(domain.TenderStatusCompleted, domain.TenderStatusNew))
	assert.False(t, domain.CanTransition("bogus", domain.TenderStatusNew))
}
