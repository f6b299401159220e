package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/lifecycle"
)

func priceOf(s string) *decimal.Decimal {
	d := decimal.MustParse(s)
	return &d
}

func dateOf(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

// readyTender is a tender that satisfies every submit requirement.
func readyTender(status domain.TenderStatus) *domain.Tender {
	return &domain.Tender{
		ID:                 uuid.MustParse("8b9e2f3a-1f2c-4f77-9f35-0d6f7a4be0aa"),
		Name:               "Road maintenance, lot 3",
		StartPrice:         priceOf("100"),
		SubmissionDeadline: dateOf("2025-01-01"),
		Status:             status,
	}
}

func TestValidate_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.TenderStatus
		to   domain.TenderStatus
	}{
		{"new to won", domain.TenderStatusNew, domain.TenderStatusWon},
		{"submitted to review is chained only", domain.TenderStatusSubmitted, domain.TenderStatusUnderReview},
		{"completed is terminal", domain.TenderStatusCompleted, domain.TenderStatusInProgress},
		{"lost is terminal", domain.TenderStatusLost, domain.TenderStatusNew},
		{"self transition", domain.TenderStatusNew, domain.TenderStatusNew},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tender := readyTender(test.from)
			_, err := lifecycle.Validate(tender, test.to, nil)
			assert.ErrorIs(t, err, domain.ErrIllegalTransition)
		})
	}
}

func TestValidate_SubmitRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Tender)
		missing []string
	}{
		{
			name:    "no start price",
			mutate:  func(t *domain.Tender) { t.StartPrice = nil },
			missing: []string{"start_price"},
		},
		{
			name:    "no name",
			mutate:  func(t *domain.Tender) { t.Name = "" },
			missing: []string{"name"},
		},
		{
			name: "nothing filled in",
			mutate: func(t *domain.Tender) {
				t.Name = ""
				t.StartPrice = nil
				t.SubmissionDeadline = nil
			},
			missing: []string{"name", "start_price", "submission_deadline"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tender := readyTender(domain.TenderStatusNew)
			test.mutate(tender)

			_, err := lifecycle.Validate(tender, domain.TenderStatusSubmitted, nil)
			assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)

			var missing *domain.MissingFieldsError
			assert.True(t, errors.As(err, &missing))
			assert.Equal(t, test.missing, missing.Fields)
		})
	}
}

func TestValidate_SubmitWithoutPriceIsFlagged(t *testing.T) {
	tender := readyTender(domain.TenderStatusNew)

	verdict, err := lifecycle.Validate(tender, domain.TenderStatusSubmitted, nil)
	assert.NoError(t, err)
	assert.Contains(t, verdict.Warnings, "submitted_price not provided")

	verdict, err = lifecycle.Validate(tender, domain.TenderStatusSubmitted,
		lifecycle.SubmitPayload{SubmittedPrice: priceOf("95")})
	assert.NoError(t, err)
	assert.Empty(t, verdict.Warnings)
	assert.Contains(t, verdict.DerivedFields, "submitted_price")
}

func TestValidate_AwardRequiresPayloadPrice(t *testing.T) {
	tender := readyTender(domain.TenderStatusUnderReview)

	_, err := lifecycle.Validate(tender, domain.TenderStatusWon, nil)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)

	var missing *domain.MissingFieldsError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"win_price"}, missing.Fields)

	_, err = lifecycle.Validate(tender, domain.TenderStatusWon,
		lifecycle.AwardPayload{WinPrice: decimal.MustParse("90")})
	assert.NoError(t, err)
}

func TestValidate_BeginWorkRequiresWinPriceOnTender(t *testing.T) {
	tender := readyTender(domain.TenderStatusWon)

	// A payload win price does not help: it applies only to the transition
	// that sets it, not downstream ones.
	_, err := lifecycle.Validate(tender, domain.TenderStatusInProgress,
		lifecycle.AwardPayload{WinPrice: decimal.MustParse("90")})
	assert.ErrorIs(t, err, domain.ErrMissingWinPrice)

	tender.WinPrice = priceOf("90")
	_, err = lifecycle.Validate(tender, domain.TenderStatusInProgress, nil)
	assert.NoError(t, err)
}

func TestValidate_PayloadShape(t *testing.T) {
	tender := readyTender(domain.TenderStatusNew)

	_, err := lifecycle.Validate(tender, domain.TenderStatusSubmitted,
		lifecycle.AwardPayload{WinPrice: decimal.MustParse("90")})
	assert.ErrorIs(t, err, domain.ErrPayloadMismatch)
}

func TestValidate_NegativePayloadPrice(t *testing.T) {
	tender := readyTender(domain.TenderStatusNew)
	_, err := lifecycle.Validate(tender, domain.TenderStatusSubmitted,
		lifecycle.SubmitPayload{SubmittedPrice: priceOf("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	tender = readyTender(domain.TenderStatusUnderReview)
	_, err = lifecycle.Validate(tender, domain.TenderStatusWon,
		lifecycle.AwardPayload{WinPrice: decimal.MustParse("-90")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestExecute_Submit(t *testing.T) {
	tender := readyTender(domain.TenderStatusNew)
	today := *dateOf("2025-01-01")
	payload := lifecycle.SubmitPayload{SubmittedPrice: priceOf("95")}

	result, err := lifecycle.Execute(tender, domain.TenderStatusSubmitted, payload, today)
	assert.NoError(t, err)

	assert.Equal(t, domain.TenderStatusSubmitted, result.Patch.Status)
	assert.Equal(t, &today, result.Patch.SubmittedAt)
	assert.Equal(t, priceOf("95"), result.Patch.SubmittedPrice)
	assert.Nil(t, result.Patch.WinPrice)

	// Submitting always schedules the review hop as a follow-up command.
	assert.Equal(t,
		&lifecycle.ChainRequest{From: domain.TenderStatusSubmitted, To: domain.TenderStatusUnderReview},
		result.Chained)

	assert.Equal(t, "submit", result.Activity.Action)
	assert.Equal(t, tender.ID, result.Activity.TenderID)
	assert.Equal(t, domain.TenderStatusNew, result.Activity.FromStatus)
	assert.Equal(t, domain.TenderStatusSubmitted, result.Activity.ToStatus)
	assert.Equal(t, "95", result.Activity.Payload["submitted_price"])
}

// Re-running with identical inputs yields an identical result, so a caller
// may retry a failed persistence step safely.
func TestExecute_Idempotent(t *testing.T) {
	tender := readyTender(domain.TenderStatusNew)
	today := *dateOf("2025-01-01")
	payload := lifecycle.SubmitPayload{SubmittedPrice: priceOf("95")}

	first, err := lifecycle.Execute(tender, domain.TenderStatusSubmitted, payload, today)
	assert.NoError(t, err)
	second, err := lifecycle.Execute(tender, domain.TenderStatusSubmitted, payload, today)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_Award(t *testing.T) {
	tender := readyTender(domain.TenderStatusUnderReview)
	today := *dateOf("2025-02-01")

	result, err := lifecycle.Execute(tender, domain.TenderStatusWon,
		lifecycle.AwardPayload{WinPrice: decimal.MustParse("1000000")}, today)
	assert.NoError(t, err)

	assert.Equal(t, domain.TenderStatusWon, result.Patch.Status)
	assert.Equal(t, priceOf("1000000"), result.Patch.WinPrice)
	assert.Nil(t, result.Patch.SubmittedAt)
	assert.Nil(t, result.Chained)
	assert.Equal(t, "award", result.Activity.Action)
}

func TestExecute_PureStatusChange(t *testing.T) {
	tests := []struct {
		from   domain.TenderStatus
		to     domain.TenderStatus
		action string
	}{
		{domain.TenderStatusUnderReview, domain.TenderStatusLost, "reject"},
		{domain.TenderStatusInProgress, domain.TenderStatusCompleted, "finish"},
		{domain.TenderStatusSubmitted, domain.TenderStatusNew, "revert"},
	}

	for _, test := range tests {
		t.Run(test.action, func(t *testing.T) {
			tender := readyTender(test.from)
			tender.WinPrice = priceOf("90")

			result, err := lifecycle.Execute(tender, test.to, nil, *dateOf("2025-02-01"))
			assert.NoError(t, err)

			assert.Equal(t, lifecycle.Patch{Status: test.to}, result.Patch)
			assert.Nil(t, result.Chained)
			assert.Equal(t, test.action, result.Activity.Action)
			assert.Empty(t, result.Activity.Payload)
		})
	}
}

func TestExecuteChain(t *testing.T) {
	req := lifecycle.ChainRequest{
		From: domain.TenderStatusSubmitted,
		To:   domain.TenderStatusUnderReview,
	}

	tender := readyTender(domain.TenderStatusSubmitted)
	result, err := lifecycle.ExecuteChain(tender, req)
	assert.NoError(t, err)
	assert.Equal(t, lifecycle.Patch{Status: domain.TenderStatusUnderReview}, result.Patch)
	assert.Nil(t, result.Chained)
	assert.Equal(t, "auto_review", result.Activity.Action)

	// A tender that moved on in the meantime does not get chained.
	tender = readyTender(domain.TenderStatusNew)
	_, err = lifecycle.ExecuteChain(tender, req)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}
