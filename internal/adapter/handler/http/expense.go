package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/port"
)

type ExpenseHandler struct {
	Handler
	service port.Service
}

func NewExpenseHandler(service port.Service, logger *zap.Logger) (*ExpenseHandler, error) {
	return &ExpenseHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type expenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	TenderID    string          `json:"tender_id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newExpenseResponse(e *domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID.String(),
		TenderID:    e.TenderID.String(),
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func (eh *ExpenseHandler) AddExpense(ctx *gin.Context) {
	tenderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		eh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := expenseRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		eh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		eh.handleValidationError(ctx, domain.ErrInvalidAmount)
		return
	}

	expense := &domain.Expense{
		TenderID:    tenderID,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
	}

	created, err := eh.service.AddExpense(ctx, expense)
	if err != nil {
		eh.handleError(ctx, err)
		return
	}

	eh.handleSuccessWithStatus(ctx, newExpenseResponse(created), http.StatusCreated)
}

func (eh *ExpenseHandler) ListExpenses(ctx *gin.Context) {
	tenderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		eh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	list, err := eh.service.ListExpenses(ctx, tenderID)
	if err != nil {
		eh.handleError(ctx, err)
		return
	}

	result := make([]expenseResponse, 0, len(list))
	for _, e := range list {
		result = append(result, newExpenseResponse(e))
	}
	eh.handleSuccess(ctx, result)
}

func (eh *ExpenseHandler) DeleteExpense(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		eh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := eh.service.DeleteExpense(ctx, id); err != nil {
		eh.handleError(ctx, err)
		return
	}

	eh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
