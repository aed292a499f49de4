package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

// Handler wires the auth HTTP routes to the service layer. Signup and login
// return the token in the body and also set the session cookie, so both
// bearer-header and cookie clients work downstream.
type Handler struct {
	service AuthService
	logger  *zap.Logger
}

func NewHandler(service AuthService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountPayload struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	User  accountPayload `json:"user"`
	Token string         `json:"token"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	account, token, err := h.service.Signup(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.logError("signup failed", err)
		common.WriteError(w, err)
		return
	}

	setSessionCookie(w, token)
	common.WriteJSON(w, http.StatusCreated, authResponse{
		User:  toAccountPayload(account),
		Token: token,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	account, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logError("login failed", err)
		common.WriteError(w, err)
		return
	}

	setSessionCookie(w, token)
	common.WriteJSON(w, http.StatusOK, authResponse{
		User:  toAccountPayload(account),
		Token: token,
	})
}

// Logout clears the session cookie. Tokens themselves expire on their own;
// there is no server-side session state to invalidate.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	account, err := h.service.GetAccount(r.Context(), accountID)
	if err != nil {
		h.logError("me lookup failed", err)
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]accountPayload{"user": toAccountPayload(account)})
}

func (h *Handler) logError(msg string, err error) {
	if h.logger != nil {
		h.logger.Warn(msg, zap.Error(err))
	}
}

func toAccountPayload(a *dbmysql.Account) accountPayload {
	return accountPayload{ID: a.AccountID, Email: a.Email}
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
