//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"rvmarket/internal/handler/dto/request"
	"rvmarket/internal/handler/dto/response"
	"rvmarket/tests/common/authtest"
	"rvmarket/tests/common/dbtest"
	"rvmarket/tests/common/httptest"
	"rvmarket/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("Normal case: New user can register", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Ruth Renter",
			Email:    "ruth@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.UserResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, "ruth@example.com", created.Email)
		require.Equal(t, "Ruth Renter", created.Name)
	})

	s.Run("Error case: Duplicate email is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Existing User", "taken@example.com")

		reqBody := request.RegisterRequest{
			Name:     "Another User",
			Email:    "taken@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Short password is rejected", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Short Pass",
			Email:    "short@example.com",
			Password: "short",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: Valid credentials",
			email:          "login@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: Unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Wrong password",
			email:          "login@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			dbtest.CreateTestUser(t, s.DB, "Login User", "login@example.com")

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var authRes response.AuthResponse
				err := httptest.DecodeResponseBody(t, w.Body, &authRes)
				require.NoError(t, err)
				require.NotEmpty(t, authRes.AccessToken)
				require.NotEmpty(t, authRes.RefreshToken)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				require.NotEmpty(t, accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: Authenticated user sees own profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Mia Member", "mia@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		err := httptest.DecodeResponseBody(t, w.Body, &me)
		require.NoError(t, err)
		require.Equal(t, "mia@example.com", me.Email)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: Refresh token issues new pair", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Rob Refresher", "rob@example.com")

		loginRes := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "rob@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginRes.Code)

		var authRes response.AuthResponse
		err := httptest.DecodeResponseBody(t, loginRes.Body, &authRes)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: authRes.RefreshToken}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var refreshed response.AuthResponse
		err = httptest.DecodeResponseBody(t, w.Body, &refreshed)
		require.NoError(t, err)
		require.NotEmpty(t, refreshed.AccessToken)
	})

	s.Run("Error case: Access token is not a refresh token", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "Amy Access", "amy@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: Logout clears session cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Lee Leaver", "lee@example.com")

		loginRes := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "lee@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginRes.Code)
		cookies := httptest.ExtractCookies(loginRes)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		for _, cookie := range httptest.ExtractCookies(w) {
			require.Empty(t, cookie.Value, "cookie %s should be cleared", cookie.Name)
		}
	})
}
