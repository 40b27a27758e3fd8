package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/prasetya/melodia-api/internal/middleware"
	"github.com/prasetya/melodia-api/internal/models"
	"github.com/prasetya/melodia-api/internal/services"
	"github.com/prasetya/melodia-api/pkg/dto"
	"github.com/prasetya/melodia-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*testutil.MockUserService, *testutil.MockTokenService, *AuthHandler, *services.JWTService) {
	t.Helper()
	mockUserService := new(testutil.MockUserService)
	mockTokenService := new(testutil.MockTokenService)
	jwtSvc := services.NewJWTService("test-secret-key", 15*time.Minute, 24*time.Hour)
	handler := NewAuthHandler(mockUserService, mockTokenService, jwtSvc)
	return mockUserService, mockTokenService, handler, jwtSvc
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUserService, mockTokenService, handler, _ := setupAuthTest(t)

	userID := uuid.New()

	mockUserService.On("VerifyCredential", mock.Anything, "alice", "secret123").Return(userID, nil)
	mockTokenService.On("StoreRefreshToken", mock.Anything, userID, mock.Anything, mock.Anything).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/authentications", handler.Login)

	body := dto.LoginRequest{Username: "alice", Password: "secret123"}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.TokenResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, int64(15*60), response.ExpiresIn)

	mockUserService.AssertExpectations(t)
	mockTokenService.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUserService, _, handler, _ := setupAuthTest(t)

	mockUserService.On("VerifyCredential", mock.Anything, "alice", "wrong").
		Return(uuid.Nil, services.ErrInvalidCredential)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/authentications", handler.Login)

	body := dto.LoginRequest{Username: "alice", Password: "wrong"}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")

	mockUserService.AssertExpectations(t)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	_, _, handler, _ := setupAuthTest(t)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/authentications", handler.Login)

	body := dto.LoginRequest{Username: "alice"}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	mockUserService, mockTokenService, handler, jwtSvc := setupAuthTest(t)

	userID := uuid.New()
	user := &models.User{ID: userID, Username: "alice", Fullname: "Alice Smith"}

	pair, err := jwtSvc.GenerateTokenPair(userID, "alice")
	require.NoError(t, err)
	oldHash := services.HashToken(pair.RefreshToken)

	mockTokenService.On("ValidateRefreshToken", mock.Anything, oldHash).Return(userID, nil)
	mockUserService.On("GetByID", mock.Anything, userID).Return(user, nil)
	mockTokenService.On("RevokeRefreshToken", mock.Anything, oldHash).Return(nil)
	mockTokenService.On("StoreRefreshToken", mock.Anything, userID, mock.Anything, mock.Anything).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Patch("/authentications", handler.Refresh)

	body := dto.RefreshRequest{RefreshToken: pair.RefreshToken}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPatch, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.TokenResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	// The presented token was rotated out.
	assert.NotEqual(t, pair.RefreshToken, response.RefreshToken)

	mockUserService.AssertExpectations(t)
	mockTokenService.AssertExpectations(t)
}

func TestAuthHandler_Refresh_RevokedToken(t *testing.T) {
	_, mockTokenService, handler, jwtSvc := setupAuthTest(t)

	userID := uuid.New()
	pair, err := jwtSvc.GenerateTokenPair(userID, "alice")
	require.NoError(t, err)

	// The token parses fine but is no longer stored server-side.
	mockTokenService.On("ValidateRefreshToken", mock.Anything, services.HashToken(pair.RefreshToken)).
		Return(uuid.Nil, services.ErrInvalidCredential)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Patch("/authentications", handler.Refresh)

	body := dto.RefreshRequest{RefreshToken: pair.RefreshToken}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPatch, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not recognized")

	mockTokenService.AssertExpectations(t)
}

func TestAuthHandler_Refresh_GarbageToken(t *testing.T) {
	_, _, handler, _ := setupAuthTest(t)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Patch("/authentications", handler.Refresh)

	body := dto.RefreshRequest{RefreshToken: "not-a-jwt"}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPatch, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	_, mockTokenService, handler, jwtSvc := setupAuthTest(t)

	pair, err := jwtSvc.GenerateTokenPair(uuid.New(), "alice")
	require.NoError(t, err)

	mockTokenService.On("RevokeRefreshToken", mock.Anything, services.HashToken(pair.RefreshToken)).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Delete("/authentications", handler.Logout)

	body := dto.LogoutRequest{RefreshToken: pair.RefreshToken}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodDelete, "/authentications", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	mockTokenService.AssertExpectations(t)
}

func TestAuthHandler_LogoutAll_Success(t *testing.T) {
	_, mockTokenService, handler, jwtSvc := setupAuthTest(t)

	userID := uuid.New()
	mockTokenService.On("RevokeAllUserTokens", mock.Anything, userID).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/authentications/logout-all", handler.LogoutAll)

	token := generateTestToken(t, jwtSvc, userID, "alice")
	req := httptest.NewRequest(http.MethodPost, "/authentications/logout-all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	mockTokenService.AssertExpectations(t)
}
