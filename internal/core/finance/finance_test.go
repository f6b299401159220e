package finance_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/finance"
)

func won(winPrice string) *domain.Tender {
	d := decimal.MustParse(winPrice)
	return &domain.Tender{
		Name:     "test tender",
		Status:   domain.TenderStatusWon,
		WinPrice: &d,
	}
}

func expense(amount string) *domain.Expense {
	return &domain.Expense{Category: "materials", Amount: decimal.MustParse(amount)}
}

// Numeric comparison: two decimals with different scales ("42000" vs
// "42000.00") are the same amount.
func assertAmount(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Zerof(t, got.Cmp(decimal.MustParse(want)), "%s: want %s, got %s", msg, want, got)
}

func TestSummarize_Profit(t *testing.T) {
	summary, err := finance.Summarize(won("1000000"), []*domain.Expense{expense("400000")})
	assert.NoError(t, err)

	assertAmount(t, "1000000", summary.GrossIncome, "gross income")
	assertAmount(t, "400000", summary.TotalExpenses, "total expenses")
	assertAmount(t, "600000", summary.GrossProfit, "gross profit")
	assertAmount(t, "42000", summary.Tax, "tax")
	assertAmount(t, "558000", summary.NetProfit, "net profit")
}

// A loss is never taxed.
func TestSummarize_Loss(t *testing.T) {
	summary, err := finance.Summarize(won("100"), []*domain.Expense{expense("200")})
	assert.NoError(t, err)

	assertAmount(t, "-100", summary.GrossProfit, "gross profit")
	assertAmount(t, "0", summary.Tax, "tax")
	assertAmount(t, "-100", summary.NetProfit, "net profit")
}

func TestSummarize_NoWinPrice(t *testing.T) {
	tender := &domain.Tender{Name: "still running", Status: domain.TenderStatusUnderReview}

	summary, err := finance.Summarize(tender, []*domain.Expense{expense("500")})
	assert.NoError(t, err)

	assertAmount(t, "0", summary.GrossIncome, "gross income")
	assertAmount(t, "-500", summary.GrossProfit, "gross profit")
	assertAmount(t, "0", summary.Tax, "tax")
}

func TestTotalExpenses_NegativeAmount(t *testing.T) {
	_, err := finance.TotalExpenses([]*domain.Expense{expense("100"), expense("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// Portfolio tax is computed once on the aggregate gross profit, not summed
// per tender: 600000 profit and 100000 loss make 500000, taxed 35000 — not
// the 42000 the profitable tender alone would owe.
func TestAggregate_TaxOnAggregateProfit(t *testing.T) {
	profitable, err := finance.Summarize(won("1000000"), []*domain.Expense{expense("400000")})
	assert.NoError(t, err)
	losing, err := finance.Summarize(won("100000"), []*domain.Expense{expense("200000")})
	assert.NoError(t, err)

	assertAmount(t, "42000", profitable.Tax, "profitable tender tax")
	assertAmount(t, "0", losing.Tax, "losing tender tax")

	total, err := finance.Aggregate([]*finance.Summary{profitable, losing})
	assert.NoError(t, err)

	assertAmount(t, "1100000", total.GrossIncome, "aggregate income")
	assertAmount(t, "600000", total.TotalExpenses, "aggregate expenses")
	assertAmount(t, "500000", total.GrossProfit, "aggregate gross profit")
	assertAmount(t, "35000", total.Tax, "aggregate tax")
	assertAmount(t, "465000", total.NetProfit, "aggregate net profit")
}

func TestAggregate_Empty(t *testing.T) {
	total, err := finance.Aggregate(nil)
	assert.NoError(t, err)
	assertAmount(t, "0", total.GrossProfit, "gross profit")
	assertAmount(t, "0", total.Tax, "tax")
}

func TestAccountingEligible(t *testing.T) {
	eligible := map[domain.TenderStatus]bool{
		domain.TenderStatusWon:        true,
		domain.TenderStatusInProgress: true,
		domain.TenderStatusCompleted:  true,
	}

	for _, s := range domain.AllStatuses {
		assert.Equal(t, eligible[s], finance.AccountingEligible(s), "eligibility of %s", s)
	}
	assert.ElementsMatch(t,
		[]domain.TenderStatus{domain.TenderStatusWon, domain.TenderStatusInProgress, domain.TenderStatusCompleted},
		finance.EligibleStatuses())
}
