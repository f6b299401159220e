package lifecycle

import (
	"github.com/govalues/decimal"

	"github.com/asaparov/tendercrm/internal/core/domain"
)

// Payload carries the extra fields a specific transition accepts. Shapes are
// keyed by target status, so an award payload cannot ride on a submit request.
type Payload interface {
	target() domain.TenderStatus
}

// SubmitPayload accompanies new -> submitted. The price is optional and may
// be filled in later; the validator only flags its absence.
type SubmitPayload struct {
	SubmittedPrice *decimal.Decimal
}

func (SubmitPayload) target() domain.TenderStatus { return domain.TenderStatusSubmitted }

// AwardPayload accompanies under_review -> won and carries the winning price.
type AwardPayload struct {
	WinPrice decimal.Decimal
}

func (AwardPayload) target() domain.TenderStatus { return domain.TenderStatusWon }
