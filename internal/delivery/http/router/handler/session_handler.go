package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for authentication handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginInput struct {
	Username    string `json:"usuario" validate:"required"`
	Password    string `json:"senha" validate:"required"`
	AccountType string `json:"tipo" validate:"required"`
}

// Login handles the login request for either account type.
func (h *SessionHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	accountType := entity.AccountType(input.AccountType)
	if !accountType.Valid() {
		return response.BadRequest(c, "INVALID_ACCOUNT_TYPE", "Unknown account type")
	}

	session, err := h.uc.Login(c.Request().Context(), input.Username, input.Password, accountType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// Logout clears the persisted session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Current returns the present session state.
func (h *SessionHandler) Current(c echo.Context) error {
	session := h.uc.Current()

	return response.Success(c, http.StatusOK, map[string]any{
		"authenticated": session.IsAuthenticated(),
		"user":          session.User,
	}, "")
}
