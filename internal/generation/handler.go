package generation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"socialcopilot/internal/common"
)

type Handler struct {
	service GenerationService
	logger  *zap.Logger
}

func NewHandler(service GenerationService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Generate handles POST /api/generate. Authentication happened in the
// middleware; quota and validation happen in the service.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	content, err := h.service.Generate(r.Context(), accountID, req)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("generation failed", zap.Uint64("account_id", accountID), zap.Error(err))
		}
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, content)
}
