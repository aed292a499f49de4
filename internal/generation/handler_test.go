package generation

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"socialcopilot/internal/common"
)

func TestHandler_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGenerationService(ctrl)
	h := NewHandler(mockSvc, nil)

	authed := func(body string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
		return r.WithContext(common.ContextWithAccountID(r.Context(), 4))
	}

	t.Run("ok", func(t *testing.T) {
		mockSvc.EXPECT().
			Generate(gomock.Any(), uint64(4), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uint64, req GenerateRequest) (*common.GeneratedContent, error) {
				require.Equal(t, common.PlatformLinkedIn, req.Platform)
				require.Equal(t, "negociação salarial", req.Topic)
				require.NotNil(t, req.Profile)
				require.Equal(t, "educator", req.Profile.Positioning)
				return &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Hashtags: []string{"go"}}, nil
			})

		body := `{
			"platform": "LinkedIn",
			"objective": "Authority",
			"topic": "negociação salarial",
			"creatorProfile": {"positioning": "educator"}
		}`
		rec := httptest.NewRecorder()
		h.Generate(rec, authed(body))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"hook":"H","body":"B","cta":"C","tip":"","hashtags":["go"]}`, rec.Body.String())
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		mockSvc.EXPECT().
			Generate(gomock.Any(), uint64(4), gomock.Any()).
			Return(nil, fmt.Errorf("%w: generation quota exceeded", common.ErrRateLimited))

		rec := httptest.NewRecorder()
		h.Generate(rec, authed(`{"platform":"LinkedIn","objective":"Authority","topic":"abc"}`))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("provider down maps to 500 with generic message", func(t *testing.T) {
		mockSvc.EXPECT().
			Generate(gomock.Any(), uint64(4), gomock.Any()).
			Return(nil, fmt.Errorf("%w: no provider configured", common.ErrProviderUnavailable))

		rec := httptest.NewRecorder()
		h.Generate(rec, authed(`{"platform":"LinkedIn","objective":"Authority","topic":"abc"}`))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "provider", "internal detail must not leak")
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Generate(rec, authed("{nope"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{}")))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
