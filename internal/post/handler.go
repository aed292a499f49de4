package post

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

type Handler struct {
	service PostService
	logger  *zap.Logger
}

func NewHandler(service PostService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type contentPayload struct {
	Hook     string   `json:"hook"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Tip      string   `json:"tip,omitempty"`
	Hashtags []string `json:"hashtags"`
}

type metricsPayload struct {
	Likes       int  `json:"likes"`
	Comments    int  `json:"comments"`
	Shares      *int `json:"shares,omitempty"`
	Impressions *int `json:"impressions,omitempty"`
}

type postResponse struct {
	ID            string         `json:"id"`
	Platform      string         `json:"platform"`
	Objective     string         `json:"objective"`
	Topic         string         `json:"topic"`
	Content       contentPayload `json:"content"`
	Status        string         `json:"status"`
	ScheduledDate string         `json:"scheduledDate"`
	Metrics       metricsPayload `json:"metrics"`
	CreatedAt     int64          `json:"createdAt"`
}

type createPostRequest struct {
	Platform      string         `json:"platform"`
	Objective     string         `json:"objective"`
	Topic         string         `json:"topic"`
	Content       contentPayload `json:"content"`
	Status        string         `json:"status"`
	ScheduledDate string         `json:"scheduledDate"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type metricsRequest struct {
	Likes    *int `json:"likes"`
	Comments *int `json:"comments"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	posts, err := h.service.ListPosts(r.Context(), accountID)
	if err != nil {
		h.logError("list posts failed", err)
		common.WriteError(w, err)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	common.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	input := DraftInput{
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
		Status: common.PostStatus(req.Status),
	}
	if req.ScheduledDate != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledDate)
		if err != nil {
			common.WriteError(w, fmt.Errorf("%w: scheduledDate must be an ISO date", common.ErrInvalidRequest))
			return
		}
		input.ScheduledDate = t
	}

	created, err := h.service.CreatePost(r.Context(), accountID, input)
	if err != nil {
		h.logError("create post failed", err)
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, toPostResponse(created))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}

	postID := mux.Vars(r)["id"]
	if err := h.service.SetStatus(r.Context(), postID, accountID, common.PostStatus(req.Status)); err != nil {
		h.logError("update status failed", err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) UpdateMetrics(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	var req metricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("%w: invalid JSON body", common.ErrInvalidRequest))
		return
	}
	if req.Likes == nil || req.Comments == nil {
		common.WriteError(w, fmt.Errorf("%w: likes and comments required", common.ErrInvalidRequest))
		return
	}

	postID := mux.Vars(r)["id"]
	if err := h.service.SetMetrics(r.Context(), postID, accountID, *req.Likes, *req.Comments); err != nil {
		h.logError("update metrics failed", err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := common.AccountIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, fmt.Errorf("%w: not authenticated", common.ErrUnauthorized))
		return
	}

	postID := mux.Vars(r)["id"]
	if err := h.service.DeletePost(r.Context(), postID, accountID); err != nil {
		h.logError("delete post failed", err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) logError(msg string, err error) {
	if h.logger != nil {
		h.logger.Warn(msg, zap.Error(err))
	}
}

func toPostResponse(p *dbmysql.Post) postResponse {
	hashtags := p.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return postResponse{
		ID:        p.PostID,
		Platform:  p.Platform,
		Objective: p.Objective,
		Topic:     p.Topic,
		Content: contentPayload{
			Hook:     p.Hook,
			Body:     p.Body,
			CTA:      p.CTA,
			Tip:      p.Tip,
			Hashtags: hashtags,
		},
		Status:        p.Status,
		ScheduledDate: p.ScheduledDate.Format(time.RFC3339),
		Metrics: metricsPayload{
			Likes:       p.Likes,
			Comments:    p.Comments,
			Shares:      p.Shares,
			Impressions: p.Impressions,
		},
		CreatedAt: p.CreatedAt.UnixMilli(),
	}
}
