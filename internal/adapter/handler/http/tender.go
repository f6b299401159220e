package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/asaparov/tendercrm/internal/core/domain"
	"github.com/asaparov/tendercrm/internal/core/lifecycle"
	"github.com/asaparov/tendercrm/internal/core/port"
)

const dateLayout = "2006-01-02"

type TenderHandler struct {
	Handler
	service port.Service
}

func NewTenderHandler(service port.Service, logger *zap.Logger) (*TenderHandler, error) {
	return &TenderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type tenderRequest struct {
	Name               string   `json:"name" binding:"required"`
	PurchaseNumber     string   `json:"purchase_number"`
	Region             string   `json:"region"`
	Link               string   `json:"link"`
	PublishedAt        *string  `json:"published_at"`
	SubmissionDeadline *string  `json:"submission_deadline"`
	StartPrice         *float64 `json:"start_price"`
}

type tenderResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	PurchaseNumber     string           `json:"purchase_number,omitempty"`
	Region             string           `json:"region,omitempty"`
	Link               string           `json:"link,omitempty"`
	PublishedAt        *string          `json:"published_at,omitempty"`
	SubmittedAt        *string          `json:"submitted_at,omitempty"`
	SubmissionDeadline *string          `json:"submission_deadline,omitempty"`
	StartPrice         *decimal.Decimal `json:"start_price,omitempty"`
	SubmittedPrice     *decimal.Decimal `json:"submitted_price,omitempty"`
	WinPrice           *decimal.Decimal `json:"win_price,omitempty"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
}

func newTenderResponse(t *domain.Tender) tenderResponse {
	return tenderResponse{
		ID:                 t.ID.String(),
		Name:               t.Name,
		PurchaseNumber:     t.PurchaseNumber,
		Region:             t.Region,
		Link:               t.Link,
		PublishedAt:        dateString(t.PublishedAt),
		SubmittedAt:        dateString(t.SubmittedAt),
		SubmissionDeadline: dateString(t.SubmissionDeadline),
		StartPrice:         t.StartPrice,
		SubmittedPrice:     t.SubmittedPrice,
		WinPrice:           t.WinPrice,
		Status:             string(t.Status),
		CreatedAt:          t.CreatedAt,
	}
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.ErrBadRequest
	}
	return &t, nil
}

func parsePrice(f *float64) (*decimal.Decimal, error) {
	if f == nil {
		return nil, nil
	}
	d, err := decimal.NewFromFloat64(*f)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	return &d, nil
}

func (th *TenderHandler) tenderFromRequest(req *tenderRequest) (*domain.Tender, error) {
	published, err := parseDate(req.PublishedAt)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate(req.SubmissionDeadline)
	if err != nil {
		return nil, err
	}
	startPrice, err := parsePrice(req.StartPrice)
	if err != nil {
		return nil, err
	}
	return &domain.Tender{
		Name:               req.Name,
		PurchaseNumber:     req.PurchaseNumber,
		Region:             req.Region,
		Link:               req.Link,
		PublishedAt:        published,
		SubmissionDeadline: deadline,
		StartPrice:         startPrice,
	}, nil
}

func (th *TenderHandler) CreateTender(ctx *gin.Context) {
	req := tenderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	tender, err := th.tenderFromRequest(&req)
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	created, err := th.service.CreateTender(ctx, tender)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccessWithStatus(ctx, newTenderResponse(created), http.StatusCreated)
}

func (th *TenderHandler) GetTender(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	tender, err := th.service.GetTender(ctx, id)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccess(ctx, newTenderResponse(tender))
}

func (th *TenderHandler) ListTenders(ctx *gin.Context) {
	var params struct {
		Limit  int `form:"limit,default=50"`
		Offset int `form:"offset,default=0"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	list, err := th.service.ListTenders(ctx, params.Limit, params.Offset)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	result := make([]tenderResponse, 0, len(list))
	for _, t := range list {
		result = append(result, newTenderResponse(t))
	}
	th.handleSuccess(ctx, result)
}

func (th *TenderHandler) UpdateTender(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := tenderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	tender, err := th.tenderFromRequest(&req)
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}
	tender.ID = id

	updated, err := th.service.UpdateTender(ctx, tender)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccess(ctx, newTenderResponse(updated))
}

func (th *TenderHandler) DeleteTender(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := th.service.DeleteTender(ctx, id); err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type transitionsResponse struct {
	Statuses []domain.TenderStatus `json:"statuses"`
}

// ListTransitions tells the UI which actions to render for a tender.
func (th *TenderHandler) ListTransitions(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	statuses, err := th.service.LegalNextStates(ctx, id)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccess(ctx, transitionsResponse{Statuses: statuses})
}

type statusRequest struct {
	Status         string   `json:"status" binding:"required"`
	SubmittedPrice *float64 `json:"submitted_price"`
	WinPrice       *float64 `json:"win_price"`
}

// UpdateStatus requests a transition. The award price must arrive with the
// request; the core re-checks that defensively.
func (th *TenderHandler) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := statusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	next := domain.TenderStatus(req.Status)
	if !next.Valid() {
		th.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var payload lifecycle.Payload
	switch next {
	case domain.TenderStatusSubmitted:
		price, err := parsePrice(req.SubmittedPrice)
		if err != nil {
			th.handleValidationError(ctx, err)
			return
		}
		payload = lifecycle.SubmitPayload{SubmittedPrice: price}
	case domain.TenderStatusWon:
		if req.WinPrice == nil {
			th.handleError(ctx, &domain.MissingFieldsError{Fields: []string{"win_price"}})
			return
		}
		price, err := parsePrice(req.WinPrice)
		if err != nil {
			th.handleValidationError(ctx, err)
			return
		}
		payload = lifecycle.AwardPayload{WinPrice: *price}
	}

	tender, err := th.service.Transition(ctx, id, next, payload)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccess(ctx, newTenderResponse(tender))
}
