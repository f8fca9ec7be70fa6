package verification_test

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
	usererrors "go-ums/internal/user/errors"
	"go-ums/internal/verification"
	verificationMock "go-ums/internal/verification/mock"
)

func TestVerificationHandler_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := verificationMock.NewMockService(ctrl)
	handler := verification.NewHandler(mockService)
	tokens := auth.NewTokenManager("access-secret", "refresh-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	g := router.Group("/user")
	verification.RegisterRoutes(g, handler, auth.Middleware(tokens))

	adminToken, _ := tokens.IssueAccessToken(2, "admin", "Admin")

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Approve(gomock.Any(), uint(5), uint(2)).
			Return(&verification.Verification{ID: 1, UserID: 5, Status: true}, nil)

		body := []byte(`{"verifier_id": 2}`)
		req := httptest.NewRequest(http.MethodPut, "/user/verify/5", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "User verified successfully", res["message"])
		assert.Equal(t, true, res["verification"].(map[string]interface{})["status"])
	})

	t.Run("requires a token", func(t *testing.T) {
		body := []byte(`{"verifier_id": 2}`)
		req := httptest.NewRequest(http.MethodPut, "/user/verify/5", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing verifier_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/user/verify/5", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockService.EXPECT().
			Approve(gomock.Any(), uint(99), uint(2)).
			Return(nil, usererrors.ErrUserNotFound)

		body := []byte(`{"verifier_id": 2}`)
		req := httptest.NewRequest(http.MethodPut, "/user/verify/99", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
