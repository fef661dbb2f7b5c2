package http

import (
	"errors"
	"net/http"

	domainOffer "loanledger-backend/internal/domain/offer"
	"loanledger-backend/internal/usecase/offer"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct{ uc *offer.Usecase }

func NewOfferHandler(uc *offer.Usecase) *OfferHandler { return &OfferHandler{uc: uc} }

type createOfferReq struct {
	LenderID     string  `json:"lender_id"     validate:"required"`
	LenderName   string  `json:"lender_name"`
	Amount       int64   `json:"amount"        validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"required,gt=0,dec2"`
	Duration     int     `json:"duration"      validate:"required,gt=0"`
	MaxBorrowers int     `json:"max_borrowers" validate:"gte=0"`
	RiskTier     string  `json:"risk_tier"`
	Description  string  `json:"description"`
}

type revisionReq struct {
	Reason string `json:"reason" validate:"required"`
}

type resubmitOfferReq struct {
	Amount       int64   `json:"amount"        validate:"gte=0"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Duration     int     `json:"duration"      validate:"gte=0"`
	Description  string  `json:"description"`
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req createOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), offer.CreateInput{
		LenderID:     req.LenderID,
		LenderName:   req.LenderName,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		Duration:     req.Duration,
		MaxBorrowers: req.MaxBorrowers,
		RiskTier:     req.RiskTier,
		Description:  req.Description,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *OfferHandler) VerifyOffer(c echo.Context) error {
	dto, err := h.uc.AnalystVerify(c.Request().Context(), c.Param("offer_id"))
	if err != nil {
		return offerMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "offer": dto})
}

func (h *OfferHandler) RequestRevision(c echo.Context) error {
	var req revisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.RequestRevision(c.Request().Context(), c.Param("offer_id"), req.Reason)
	if err != nil {
		return offerMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "offer": dto})
}

func (h *OfferHandler) ResubmitOffer(c echo.Context) error {
	var req resubmitOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Resubmit(c.Request().Context(), offer.ResubmitInput{
		OfferID:      c.Param("offer_id"),
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		Duration:     req.Duration,
		Description:  req.Description,
	})
	if err != nil {
		return offerMutationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true, "offer": dto})
}

func (h *OfferHandler) ListOffers(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		out []offer.OfferDTO
		err error
	)
	switch {
	case c.QueryParam("lender_id") != "":
		out, err = h.uc.ListByLender(ctx, c.QueryParam("lender_id"))
	case c.QueryParam("status") == string(domainOffer.StatusAvailable):
		out, err = h.uc.ListAvailable(ctx)
	default:
		out, err = h.uc.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

func offerMutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainOffer.ErrNotFound):
		return c.JSON(http.StatusOK, map[string]any{"applied": false})
	case errors.Is(err, domainOffer.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "invalid state transition"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
