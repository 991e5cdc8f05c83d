package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-maker/internal/service"
	"github.com/MKhiriev/go-invoice-maker/models"
)

// ─────────────────────────────────────────────
// Home routing
// ─────────────────────────────────────────────

func TestHome_NoOwnerRedirectsToSetup(t *testing.T) {
	auth := &mockAuthService{
		ownerExistsFn: func(ctx context.Context) (bool, error) { return false, nil },
	}
	router := newTestHandler(t, auth, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/owner-setup", rec.Header().Get("Location"))
}

func TestHome_OwnerExistsRedirectsToLogin(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestHome_ActiveSessionRedirectsToDashboard(t *testing.T) {
	router := newTestHandler(t, staffAuth(models.RoleOwner), nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// Owner setup
// ─────────────────────────────────────────────

func TestOwnerSetupForm_DisabledOnceOwnerExists(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/owner-setup", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestOwnerSetupForm_ShownWhileNoOwner(t *testing.T) {
	auth := &mockAuthService{
		ownerExistsFn: func(ctx context.Context) (bool, error) { return false, nil },
	}
	router := newTestHandler(t, auth, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/owner-setup", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Owner Setup")
}

func TestOwnerSetup_SubmitsFormFields(t *testing.T) {
	var got service.OwnerSetupInput
	auth := &mockAuthService{
		setupOwnerFn: func(ctx context.Context, in service.OwnerSetupInput) (models.User, error) {
			got = in
			return models.User{UserID: 1, Username: in.Username}, nil
		},
	}
	router := newTestHandler(t, auth, nil).Init()

	rec := postForm(t, router, "/owner-setup", url.Values{
		"setup_key":        {"the-key"},
		"username":         {"boss"},
		"password":         {"secret123"},
		"password_confirm": {"secret123"},
	}, nil)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "the-key", got.SetupKey)
	assert.Equal(t, "boss", got.Username)
	assert.Equal(t, "secret123", got.PasswordConfirm)
}

func TestOwnerSetup_WrongKeyRerendersWith400(t *testing.T) {
	auth := &mockAuthService{
		setupOwnerFn: func(ctx context.Context, in service.OwnerSetupInput) (models.User, error) {
			return models.User{}, service.ErrWrongSetupKey
		},
	}
	router := newTestHandler(t, auth, nil).Init()

	rec := postForm(t, router, "/owner-setup", url.Values{
		"setup_key": {"wrong"},
		"username":  {"boss"},
		"password":  {"secret123"},
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrWrongSetupKey.Error())
	// the entered username survives the round trip
	assert.Contains(t, rec.Body.String(), `value="boss"`)
}

// ─────────────────────────────────────────────
// Login / logout
// ─────────────────────────────────────────────

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{UserID: 1, Username: username, Role: models.RoleOwner}, nil
		},
		createSessionFn: func(ctx context.Context, user models.User) (string, error) {
			return "signed-token", nil
		},
	}
	router := newTestHandler(t, auth, nil).Init()

	rec := postForm(t, router, "/login", url.Values{
		"username": {"boss"},
		"password": {"secret123"},
	}, nil)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongCredentialsRerendersWith400(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := postForm(t, router, "/login", url.Values{
		"username": {"boss"},
		"password": {"wrong"},
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrWrongCredentials.Error())
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

// ─────────────────────────────────────────────
// Auth middleware
// ─────────────────────────────────────────────

func TestAuth_NoCookieRedirectsToLogin(t *testing.T) {
	router := newTestHandler(t, staffAuth(models.RoleOwner), nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAuth_InvalidSessionRedirectsToLogin(t *testing.T) {
	// the default mock rejects every token
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAuth_NonStaffRoleIsForbidden(t *testing.T) {
	router := newTestHandler(t, staffAuth("intruder"), nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "No access")
}

func TestAuth_StaffRolesPass(t *testing.T) {
	for _, role := range []string{models.RoleOwner, models.RoleEmployee} {
		t.Run(role, func(t *testing.T) {
			router := newTestHandler(t, staffAuth(role), nil).Init()

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.AddCookie(sessionCookie())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
