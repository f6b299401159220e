package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/finance"
	"github.com/asaparov/tendercrm/internal/core/port"
)

type AccountingHandler struct {
	Handler
	service port.Service
}

func NewAccountingHandler(service port.Service, logger *zap.Logger) (*AccountingHandler, error) {
	return &AccountingHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type summaryResponse struct {
	GrossIncome   decimal.Decimal `json:"gross_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	Tax           decimal.Decimal `json:"tax"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

func newSummaryResponse(s *finance.Summary) summaryResponse {
	return summaryResponse{
		GrossIncome:   s.GrossIncome,
		TotalExpenses: s.TotalExpenses,
		GrossProfit:   s.GrossProfit,
		Tax:           s.Tax,
		NetProfit:     s.NetProfit,
	}
}

// TenderSummary expands a single tender's card: tax on this tender alone.
func (ah *AccountingHandler) TenderSummary(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	summary, err := ah.service.TenderSummary(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newSummaryResponse(summary))
}

type reportItemResponse struct {
	Tender  tenderResponse  `json:"tender"`
	Summary summaryResponse `json:"summary"`
}

type reportResponse struct {
	Items []reportItemResponse `json:"items"`
	Total summaryResponse      `json:"total"`
}

// Report is the accounting dashboard: only revenue-bearing tenders, with the
// tax computed once on the portfolio-level gross profit.
func (ah *AccountingHandler) Report(ctx *gin.Context) {
	report, err := ah.service.AccountingReport(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	items := make([]reportItemResponse, 0, len(report.Items))
	for _, item := range report.Items {
		items = append(items, reportItemResponse{
			Tender:  newTenderResponse(item.Tender),
			Summary: newSummaryResponse(item.Summary),
		})
	}

	ah.handleSuccess(ctx, reportResponse{
		Items: items,
		Total: newSummaryResponse(report.Total),
	})
}
