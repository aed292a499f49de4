package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"socialcopilot/internal/common"
	"socialcopilot/internal/dbmysql"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthService(ctrl)
	h := NewHandler(mockSvc, nil)

	t.Run("created with cookie and token", func(t *testing.T) {
		mockSvc.EXPECT().
			Signup(gomock.Any(), "a@b.com", "secret123", "secret123").
			Return(&dbmysql.Account{AccountID: 1, Email: "a@b.com"}, "tok123", nil)

		body := `{"email":"a@b.com","password":"secret123","confirmPassword":"secret123"}`
		rec := httptest.NewRecorder()
		h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "tok123", resp["token"])
		user := resp["user"].(map[string]interface{})
		require.Equal(t, "a@b.com", user["email"])

		c := sessionCookie(t, rec)
		require.NotNil(t, c)
		require.Equal(t, "tok123", c.Value)
		require.True(t, c.HttpOnly)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockSvc.EXPECT().
			Signup(gomock.Any(), "a@b.com", "secret123", "secret123").
			Return(nil, "", fmt.Errorf("%w: email already registered", common.ErrInvalidRequest))

		body := `{"email":"a@b.com","password":"secret123","confirmPassword":"secret123"}`
		rec := httptest.NewRecorder()
		h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{")))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthService(ctrl)
	h := NewHandler(mockSvc, nil)

	t.Run("ok", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "a@b.com", "secret123").
			Return(&dbmysql.Account{AccountID: 1, Email: "a@b.com"}, "tok123", nil)

		body := `{"email":"a@b.com","password":"secret123"}`
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "a@b.com", "wrong").
			Return(nil, "", fmt.Errorf("%w: invalid email or password", common.ErrUnauthorized))

		body := `{"email":"a@b.com","password":"wrong"}`
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	h := NewHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	require.Empty(t, c.Value)
	require.Negative(t, c.MaxAge, "cookie must be expired")
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthService(ctrl)
	h := NewHandler(mockSvc, nil)

	t.Run("ok", func(t *testing.T) {
		mockSvc.EXPECT().GetAccount(gomock.Any(), uint64(5)).
			Return(&dbmysql.Account{AccountID: 5, Email: "me@example.com"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		r = r.WithContext(common.ContextWithAccountID(r.Context(), 5))
		rec := httptest.NewRecorder()
		h.Me(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"user":{"id":5,"email":"me@example.com"}}`, rec.Body.String())
	})

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
