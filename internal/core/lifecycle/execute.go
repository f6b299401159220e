package lifecycle

import (
	"time"

	"github.com/govalues/decimal"

	"github.com/asaparov/tendercrm/internal/core/domain"
)

// Patch is the field set a transition writes back to the tender. Only the
// fields the transition touches are non-nil.
type Patch struct {
	Status         domain.TenderStatus
	SubmittedAt    *time.Time
	SubmittedPrice *decimal.Decimal
	WinPrice       *decimal.Decimal
}

// ChainRequest is a follow-up transition the caller must run after the
// primary patch is durably applied. It is returned as a value instead of
// being fired internally, so a caller whose storage layer supports it can
// batch both writes into one transaction. If the second write fails the
// tender stays visibly in the intermediate status; there is no rollback of
// the first write.
type ChainRequest struct {
	From domain.TenderStatus
	To   domain.TenderStatus
}

// Result of a single executed transition.
type Result struct {
	Patch    Patch
	Chained  *ChainRequest
	Activity domain.ActivityRecord
}

var actions = map[domain.TenderStatus]string{
	domain.TenderStatusNew:         "revert",
	domain.TenderStatusSubmitted:   "submit",
	domain.TenderStatusUnderReview: "review",
	domain.TenderStatusWon:         "award",
	domain.TenderStatusLost:        "reject",
	domain.TenderStatusInProgress:  "begin_work",
	domain.TenderStatusCompleted:   "finish",
}

// Execute applies a validated transition. It is a pure function of its
// inputs: the current date is injected, nothing is read from a global clock,
// and re-running with identical inputs yields an identical result.
func Execute(t *domain.Tender, next domain.TenderStatus, p Payload, today time.Time) (*Result, error) {
	if _, err := Validate(t, next, p); err != nil {
		return nil, err
	}

	patch := Patch{Status: next}
	snapshot := map[string]string{}
	var chained *ChainRequest

	switch next {
	case domain.TenderStatusSubmitted:
		day := today
		patch.SubmittedAt = &day
		if sp, ok := p.(SubmitPayload); ok && sp.SubmittedPrice != nil {
			price := *sp.SubmittedPrice
			patch.SubmittedPrice = &price
			snapshot["submitted_price"] = price.String()
		}
		// Every successful submit is immediately followed by the review hop.
		chained = &ChainRequest{From: domain.TenderStatusSubmitted, To: domain.TenderStatusUnderReview}

	case domain.TenderStatusWon:
		ap := p.(AwardPayload)
		price := ap.WinPrice
		patch.WinPrice = &price
		snapshot["win_price"] = price.String()
	}

	return &Result{
		Patch:   patch,
		Chained: chained,
		Activity: domain.ActivityRecord{
			Action:     actions[next],
			TenderID:   t.ID,
			FromStatus: t.Status,
			ToStatus:   next,
			Payload:    snapshot,
		},
	}, nil
}

// ExecuteChain applies a follow-up request produced by Execute. The request
// itself is the proof of legality, so the status graph is not consulted; the
// only check is that the tender still sits in the status the primary patch
// left it in.
func ExecuteChain(t *domain.Tender, req ChainRequest) (*Result, error) {
	if t.Status != req.From {
		return nil, domain.ErrIllegalTransition
	}
	return &Result{
		Patch: Patch{Status: req.To},
		Activity: domain.ActivityRecord{
			Action:     "auto_" + actions[req.To],
			TenderID:   t.ID,
			FromStatus: req.From,
			ToStatus:   req.To,
			Payload:    map[string]string{},
		},
	}, nil
}
