package userdetails_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-ums/internal/userdetails"
	userdetailserrors "go-ums/internal/userdetails/errors"
	detailsMock "go-ums/internal/userdetails/mock"
)

func setupDetailsRouter(handler *userdetails.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/user")
	userdetails.RegisterRoutes(g, handler)
	return r
}

func TestDetailsHandler_Add(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := detailsMock.NewMockService(ctrl)
	router := setupDetailsRouter(userdetails.NewHandler(mockService))

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req userdetails.CreateDetailsRequest) (*userdetails.UserDetails, error) {
				assert.Equal(t, uint(5), req.UserID)
				return &userdetails.UserDetails{DetailsID: 3, UserID: 5, Name: req.Name}, nil
			})

		body := []byte(`{"user_id": 5, "name": "John Doe", "city": "Pune"}`)
		req := httptest.NewRequest(http.MethodPost, "/user/addUserDetails", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, float64(3), res["details_id"])
	})

	t.Run("missing user_id", func(t *testing.T) {
		body := []byte(`{"name": "John Doe"}`)
		req := httptest.NewRequest(http.MethodPost, "/user/addUserDetails", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		body := []byte(`{"user_id": 5}`)
		req := httptest.NewRequest(http.MethodPost, "/user/addUserDetails", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Error adding user details", res["message"])
	})
}

func TestDetailsHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := detailsMock.NewMockService(ctrl)
	router := setupDetailsRouter(userdetails.NewHandler(mockService))

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Update(gomock.Any(), uint(3), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uint, req userdetails.UpdateDetailsRequest) (*userdetails.UserDetails, error) {
				if assert.NotNil(t, req.City) {
					assert.Equal(t, "Mumbai", *req.City)
				}
				assert.Nil(t, req.Name)
				return &userdetails.UserDetails{DetailsID: 3, City: "Mumbai"}, nil
			})

		body := []byte(`{"city": "Mumbai"}`)
		req := httptest.NewRequest(http.MethodPut, "/user/updateUserDetails/3", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().
			Update(gomock.Any(), uint(99), gomock.Any()).
			Return(nil, userdetailserrors.ErrDetailsNotFound)

		body := []byte(`{"city": "Mumbai"}`)
		req := httptest.NewRequest(http.MethodPut, "/user/updateUserDetails/99", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "User details not found", res["message"])
	})

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/user/updateUserDetails/abc", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDetailsHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := detailsMock.NewMockService(ctrl)
	router := setupDetailsRouter(userdetails.NewHandler(mockService))

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			GetByUserID(gomock.Any(), uint(5)).
			Return(&userdetails.UserDetails{DetailsID: 3, UserID: 5, Name: "John Doe"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/user/getUserDetails?userId=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "John Doe", res["name"])
	})

	t.Run("missing userId", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/getUserDetails", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().
			GetByUserID(gomock.Any(), uint(99)).
			Return(nil, userdetailserrors.ErrDetailsNotFound)

		req := httptest.NewRequest(http.MethodGet, "/user/getUserDetails?userId=99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDetailsHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := detailsMock.NewMockService(ctrl)
	router := setupDetailsRouter(userdetails.NewHandler(mockService))

	t.Run("success", func(t *testing.T) {
		roleID := uint(2)
		mockService.EXPECT().
			ListAll(gomock.Any()).
			Return([]userdetails.EnrichedDetailsResponse{
				{
					DetailsWithRole: userdetails.DetailsWithRole{
						UserDetails: userdetails.UserDetails{DetailsID: 3, Name: "John Doe"},
						RoleID:      &roleID,
					},
					RoleName: "Manager",
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/user/getAllUserDetails", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Len(t, res, 1)
		assert.Equal(t, "Manager", res[0]["role_name"])
		assert.Equal(t, float64(2), res[0]["role_id"])
	})

	t.Run("empty table", func(t *testing.T) {
		mockService.EXPECT().
			ListAll(gomock.Any()).
			Return(nil, userdetailserrors.ErrNoDetailsFound)

		req := httptest.NewRequest(http.MethodGet, "/user/getAllUserDetails", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDetailsHandler_UpdateBasic(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := detailsMock.NewMockService(ctrl)
	router := setupDetailsRouter(userdetails.NewHandler(mockService))

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			UpdateBasic(gomock.Any(), uint(5), gomock.Any()).
			DoAndReturn(func(ctx context.Context, userID uint, req userdetails.UpdateBasicRequest) (*userdetails.UserDetails, error) {
				if assert.NotNil(t, req.Name) {
					assert.Equal(t, "John Smith", *req.Name)
				}
				return &userdetails.UserDetails{DetailsID: 3, UserID: 5, Name: "John Smith"}, nil
			})

		body := []byte(`{"name": "John Smith", "birthday": "1990-04-02"}`)
		req := httptest.NewRequest(http.MethodPut, "/user/updatebasic/5", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "User details updated successfully", res["message"])
		assert.Equal(t, "John Smith", res["userDetails"].(map[string]interface{})["name"])
	})

	t.Run("bad user_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/user/updatebasic/abc", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile missing", func(t *testing.T) {
		mockService.EXPECT().
			UpdateBasic(gomock.Any(), uint(99), gomock.Any()).
			Return(nil, userdetailserrors.ErrDetailsNotFound)

		body := []byte(`{"city": "Mumbai"}`)
		req := httptest.NewRequest(http.MethodPut, "/user/updatebasic/99", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "User details not found"}`, w.Body.String())
	})

	t.Run("update failure", func(t *testing.T) {
		mockService.EXPECT().
			UpdateBasic(gomock.Any(), uint(5), gomock.Any()).
			Return(nil, errors.New("write failed"))

		body := []byte(`{"city": "Mumbai"}`)
		req := httptest.NewRequest(http.MethodPut, "/user/updatebasic/5", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Failed to update user details"}`, w.Body.String())
	})
}
