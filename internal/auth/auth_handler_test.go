package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-ums/internal/auth"
	autherrors "go-ums/internal/auth/errors"
	authMock "go-ums/internal/auth/mock"
	usererrors "go-ums/internal/user/errors"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/auth/login", handler.Login)

	t.Run("success - body and refresh cookie", func(t *testing.T) {
		reqBody := auth.LoginRequest{EmailAddress: "john@example.com", Password: "secret123"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.EmailAddress, reqBody.Password).
			Return(auth.LoginResponse{
				AccessToken:        "access-token",
				RefreshToken:       "refresh-token",
				Role:               "Admin",
				UserID:             5,
				VerificationStatus: true,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "access-token", res["accessToken"])
		assert.Equal(t, "Admin", res["role"])
		assert.Equal(t, float64(5), res["userId"])
		assert.Equal(t, true, res["verificationStatus"])

		ck := findCookie(w.Result().Cookies(), "refreshToken")
		if assert.NotNil(t, ck) {
			assert.Equal(t, "refresh-token", ck.Value)
			assert.True(t, ck.HttpOnly)
			assert.True(t, ck.Secure)
			assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{EmailAddress: "john@example.com", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Invalid credentials", res["message"])
	})

	t.Run("missing password - service not called", func(t *testing.T) {
		body := []byte(`{"email_address": "john@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/auth/register", handler.Register)

	validBody := func() []byte {
		body, _ := json.Marshal(map[string]interface{}{
			"username":      "johndoe",
			"password":      "secret123",
			"email_address": "john@example.com",
			"name":          "John Doe",
			"phone_no":      "9876543210",
			"user_type":     "Employee",
		})
		return body
	}

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(validBody()))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "User registered successfully", res["message"])
	})

	t.Run("short password - validation error", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"username":      "johndoe",
			"password":      "123",
			"email_address": "john@example.com",
			"name":          "John Doe",
			"phone_no":      "9876543210",
			"user_type":     "Employee",
		})

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user type rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"username":      "johndoe",
			"password":      "secret123",
			"email_address": "john@example.com",
			"name":          "John Doe",
			"phone_no":      "9876543210",
			"user_type":     "Wizard",
		})

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email surfaces with error detail", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(usererrors.ErrEmailTaken)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(validBody()))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Error registering user", res["message"])
		assert.NotEmpty(t, res["error"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)

	handler := auth.NewHandler(authMock.NewMockService(ctrl))
	router := setupAuthRouter()
	router.POST("/auth/logout", handler.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Logged out successfully", res["message"])

	ck := findCookie(w.Result().Cookies(), "refreshToken")
	if assert.NotNil(t, ck) {
		assert.Empty(t, ck.Value)
		assert.Less(t, ck.MaxAge, 0)
	}
}

func TestAuthHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	tokens := auth.NewTokenManager("access-secret", "refresh-secret")

	router := setupAuthRouter()
	router.GET("/auth/status", auth.Middleware(tokens), handler.Status)

	t.Run("success with bearer token", func(t *testing.T) {
		token, _ := tokens.IssueAccessToken(5, "johndoe", "Admin")

		mockService.EXPECT().
			Status(gomock.Any(), uint(5)).
			Return(auth.StatusResponse{
				IsAuthenticated:    true,
				Role:               "Admin",
				UserID:             5,
				VerificationStatus: true,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["isAuthenticated"])
		assert.Equal(t, "Admin", res["role"])
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Token not found", res["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("refresh token rejected on access route", func(t *testing.T) {
		refresh, _ := tokens.IssueRefreshToken(5, "johndoe", "Admin")

		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/auth/refresh", handler.Refresh)

	t.Run("token from cookie", func(t *testing.T) {
		mockService.EXPECT().
			Refresh(gomock.Any(), "old-refresh").
			Return(auth.LoginResponse{AccessToken: "new-access", RefreshToken: "new-refresh", UserID: 5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		ck := findCookie(w.Result().Cookies(), "refreshToken")
		if assert.NotNil(t, ck) {
			assert.Equal(t, "new-refresh", ck.Value)
		}
	})

	t.Run("token from body", func(t *testing.T) {
		mockService.EXPECT().
			Refresh(gomock.Any(), "body-refresh").
			Return(auth.LoginResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		body := []byte(`{"refreshToken": "body-refresh"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no token anywhere", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		mockService.EXPECT().
			Refresh(gomock.Any(), "stale").
			Return(auth.LoginResponse{}, autherrors.ErrInvalidRefreshToken)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
