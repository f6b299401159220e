package finance

import (
	"github.com/govalues/decimal"

	"github.com/asaparov/tendercrm/internal/core/domain"
)

// Flat simplified-regime (USN) rate. Applied to positive gross profit only,
// never to a loss.
var taxRate = decimal.MustParse("0.07")

// Summary is the financial view of a tender or a portfolio of tenders.
type Summary struct {
	GrossIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	GrossProfit   decimal.Decimal
	Tax           decimal.Decimal
	NetProfit     decimal.Decimal
}

// GrossIncome is the win price, or zero while the tender has not won.
func GrossIncome(t *domain.Tender) decimal.Decimal {
	if t.WinPrice == nil {
		return decimal.Zero
	}
	return *t.WinPrice
}

// TotalExpenses sums expense amounts. A negative amount is a data fault and
// is reported rather than silently folded into the total.
func TotalExpenses(expenses []*domain.Expense) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Amount.IsNeg() {
			return decimal.Decimal{}, domain.ErrInvalidAmount
		}
		var err error
		total, err = total.Add(e.Amount)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return total, nil
}

// Summarize computes the financial summary for a single tender card.
func Summarize(t *domain.Tender, expenses []*domain.Expense) (*Summary, error) {
	total, err := TotalExpenses(expenses)
	if err != nil {
		return nil, err
	}
	return summarize(GrossIncome(t), total)
}

// Aggregate folds per-tender summaries into one portfolio summary. Income and
// expense totals are summed first and the tax is computed once on the
// aggregate gross profit: summing per-tender tax would overstate the
// liability whenever some tender runs at a loss.
func Aggregate(summaries []*Summary) (*Summary, error) {
	income, expenses := decimal.Zero, decimal.Zero
	var err error
	for _, s := range summaries {
		if income, err = income.Add(s.GrossIncome); err != nil {
			return nil, err
		}
		if expenses, err = expenses.Add(s.TotalExpenses); err != nil {
			return nil, err
		}
	}
	return summarize(income, expenses)
}

func summarize(income, expenses decimal.Decimal) (*Summary, error) {
	gross, err := income.Sub(expenses)
	if err != nil {
		return nil, err
	}
	tax := decimal.Zero
	if gross.IsPos() {
		if tax, err = gross.Mul(taxRate); err != nil {
			return nil, err
		}
	}
	net, err := gross.Sub(tax)
	if err != nil {
		return nil, err
	}
	return &Summary{
		GrossIncome:   income,
		TotalExpenses: expenses,
		GrossProfit:   gross,
		Tax:           tax,
		NetProfit:     net,
	}, nil
}

// EligibleStatuses lists the revenue-bearing statuses shown in profit/loss
// reporting.
func EligibleStatuses() []domain.TenderStatus {
	return []domain.TenderStatus{
		domain.TenderStatusWon,
		domain.TenderStatusInProgress,
		domain.TenderStatusCompleted,
	}
}

// AccountingEligible reports whether a tender takes part in accounting views.
func AccountingEligible(s domain.TenderStatus) bool {
	switch s {
	case domain.TenderStatusWon, domain.TenderStatusInProgress, domain.TenderStatusCompleted:
		return true
	}
	return false
}
