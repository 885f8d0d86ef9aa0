package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soumyadiya/portfolio-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenGenerator("test-secret")
	validToken, err := tokens.Generate(42, "alice")
	require.NoError(t, err)

	otherSecret := auth.NewTokenGenerator("other-secret")
	foreignToken, err := otherSecret.Generate(42, "alice")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
		{
			name:           "header without bearer scheme",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"invalid token"}`,
		},
		{
			name:           "token signed with another secret",
			authHeader:     "Bearer " + foreignToken,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"invalid token"}`,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "lowercase bearer scheme",
			authHeader:     "bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			var gotUsername string
			var nextCalled bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = GetUserID(r.Context())
				gotUsername, _ = GetUsername(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tokens)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, nextCalled)
				assert.Equal(t, 42, gotUserID)
				assert.Equal(t, "alice", gotUsername)
			} else {
				assert.False(t, nextCalled)
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestGetUserID_MissingValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	userID, ok := GetUserID(req.Context())

	assert.False(t, ok)
	assert.Zero(t, userID)
}

func TestGetUsername_MissingValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	username, ok := GetUsername(req.Context())

	assert.False(t, ok)
	assert.Empty(t, username)
}
