package lifecycle

import (
	"github.com/asaparov/tendercrm/internal/core/domain"
)

// Validation is a successful verdict: the fields Execute will derive and the
// soft warnings that do not block the transition.
type Validation struct {
	DerivedFields []string
	Warnings      []string
}

// Validate decides whether tender t may move to next with payload p.
// Rules run in order: graph legality first, then the per-transition field
// requirements. Payloads are consulted only by the transition that sets the
// field they carry; a stray payload on a downstream transition never
// substitutes for a field missing on the tender itself.
func Validate(t *domain.Tender, next domain.TenderStatus, p Payload) (*Validation, error) {
	if !domain.CanTransition(t.Status, next) {
		return nil, domain.ErrIllegalTransition
	}

	v := &Validation{}
	switch next {
	case domain.TenderStatusSubmitted:
		var missing []string
		if t.Name == "" {
			missing = append(missing, "name")
		}
		if t.StartPrice == nil {
			missing = append(missing, "start_price")
		}
		if t.SubmissionDeadline == nil {
			missing = append(missing, "submission_deadline")
		}
		if len(missing) > 0 {
			return nil, &domain.MissingFieldsError{Fields: missing}
		}
		sp, ok := p.(SubmitPayload)
		if p != nil && !ok {
			return nil, domain.ErrPayloadMismatch
		}
		if sp.SubmittedPrice != nil && sp.SubmittedPrice.IsNeg() {
			return nil, domain.ErrInvalidAmount
		}
		v.DerivedFields = append(v.DerivedFields, "submitted_at")
		if sp.SubmittedPrice != nil {
			v.DerivedFields = append(v.DerivedFields, "submitted_price")
		} else {
			// Soft requirement: the transition proceeds, the price can be
			// entered later.
			v.Warnings = append(v.Warnings, "submitted_price not provided")
		}

	case domain.TenderStatusWon:
		ap, ok := p.(AwardPayload)
		if !ok {
			return nil, &domain.MissingFieldsError{Fields: []string{"win_price"}}
		}
		if ap.WinPrice.IsNeg() {
			return nil, domain.ErrInvalidAmount
		}
		v.DerivedFields = append(v.DerivedFields, "win_price")

	case domain.TenderStatusInProgress:
		// The win price must already sit on the tender; an award payload
		// attached here is not the transition that sets it.
		if t.WinPrice == nil {
			return nil, domain.ErrMissingWinPrice
		}
	}

	return v, nil
}
