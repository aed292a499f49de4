package profile

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"socialcopilot/internal/common"
)

type Handler struct {
	service ProfileService
	logger  *zap.Logger
}

func NewHandler(service ProfileService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	p, err := h.service.GetProfile(r.Context(), accountID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, p)
}

// Save replaces the account's current profile wholesale.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	var req common.CreatorProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	saved, err := h.service.SaveProfile(r.Context(), accountID, req)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("save profile failed", zap.Error(err))
		}
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, saved)
}
