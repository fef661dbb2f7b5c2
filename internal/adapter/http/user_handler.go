package http

import (
	"errors"
	"net/http"

	domainUser "loanledger-backend/internal/domain/user"
	"loanledger-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,role"`
}

type loginReq struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Register(c.Request().Context(), user.RegisterInput(req))
	if err != nil {
		if errors.Is(err, domainUser.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "user": dto})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Login(c.Request().Context(), user.LoginInput(req))
	if err != nil {
		if errors.Is(err, domainUser.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "login failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"role":    dto.Role,
		"user":    dto,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "query failed"})
	}
	return c.JSON(http.StatusOK, users)
}
