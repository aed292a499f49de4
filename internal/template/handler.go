package template

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

type Handler struct {
	service TemplateService
	logger  *zap.Logger
}

func NewHandler(service TemplateService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type contentPayload struct {
	Hook     string   `json:"hook"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Tip      string   `json:"tip,omitempty"`
	Hashtags []string `json:"hashtags"`
}

type templateResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Platform  string         `json:"platform"`
	Objective string         `json:"objective"`
	Topic     string         `json:"topic"`
	Content   contentPayload `json:"content"`
	CreatedAt int64          `json:"createdAt"`
}

type saveTemplateRequest struct {
	Name      string         `json:"name"`
	Platform  string         `json:"platform"`
	Objective string         `json:"objective"`
	Topic     string         `json:"topic"`
	Content   contentPayload `json:"content"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	templates, err := h.service.ListTemplates(r.Context(), accountID)
	if err != nil {
		h.logError("list templates failed", err)
		common.WriteError(w, err)
		return
	}

	out := make([]templateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, toTemplateResponse(&templates[i]))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	var req saveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	saved, err := h.service.SaveTemplate(r.Context(), accountID, SaveInput{
		Name:      req.Name,
		Platform:  common.Platform(req.Platform),
		Objective: common.Objective(req.Objective),
		Topic:     req.Topic,
		Content: common.GeneratedContent{
			Hook:     req.Content.Hook,
			Body:     req.Content.Body,
			CTA:      req.Content.CTA,
			Tip:      req.Content.Tip,
			Hashtags: req.Content.Hashtags,
		},
	})
	if err != nil {
		h.logError("save template failed", err)
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, toTemplateResponse(saved))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	templateID := mux.Vars(r)["id"]
	if err := h.service.DeleteTemplate(r.Context(), templateID, accountID); err != nil {
		h.logError("delete template failed", err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) logError(msg string, err error) {
	if h.logger != nil {
		h.logger.Warn(msg, zap.Error(err))
	}
}

func toTemplateResponse(t *dbmysql.SavedTemplate) templateResponse {
	hashtags := t.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return templateResponse{
		ID:        t.TemplateID,
		Name:      t.Name,
		Platform:  t.Platform,
		Objective: t.Objective,
		Topic:     t.Topic,
		Content: contentPayload{
			Hook:     t.Hook,
			Body:     t.Body,
			CTA:      t.CTA,
			Tip:      t.Tip,
			Hashtags: hashtags,
		},
		CreatedAt: t.CreatedAt.UnixMilli(),
	}
}
