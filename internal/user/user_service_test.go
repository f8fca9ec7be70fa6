package user_test

import (
	"context"
	"errors"
	"testing"

	"go-ums/internal/user"
	usererrors "go-ums/internal/user/errors"
	userMock "go-ums/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestUserService_ListEmployeesByOffice(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().
			FindEmployeesByOffice(ctx, uint(1)).
			Return([]user.User{
				{UserID: 1, Username: "andi", Name: "Andi", UserType: user.TypeEmployee},
				{UserID: 2, Username: "budi", Name: "Budi", UserType: user.TypeEmployee},
			}, nil)

		resp, err := svc.ListEmployeesByOffice(ctx, 1)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Andi", resp[0].Name)
		assert.Equal(t, uint(2), resp[1].UserID)
	})

	t.Run("empty office yields empty list", func(t *testing.T) {
		repo.EXPECT().
			FindEmployeesByOffice(ctx, uint(9)).
			Return([]user.User{}, nil)

		resp, err := svc.ListEmployeesByOffice(ctx, 9)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("repo error", func(t *testing.T) {
		repo.EXPECT().
			FindEmployeesByOffice(ctx, uint(1)).
			Return(nil, errors.New("db error"))

		_, err := svc.ListEmployeesByOffice(ctx, 1)

		assert.Error(t, err)
	})
}

func TestUserService_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("both criteria forwarded", func(t *testing.T) {
		repo.EXPECT().
			Filter(ctx, "EMP-001", "Engineer").
			Return([]user.User{{UserID: 3, EmployeeID: strPtr("EMP-001"), Designation: strPtr("Engineer")}}, nil)

		resp, err := svc.Filter(ctx, "EMP-001", "Engineer")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("no criteria still lists", func(t *testing.T) {
		repo.EXPECT().
			Filter(ctx, "", "").
			Return([]user.User{{UserID: 1}, {UserID: 2}}, nil)

		resp, err := svc.Filter(ctx, "", "")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("no match yields empty list, not an error", func(t *testing.T) {
		repo.EXPECT().
			Filter(ctx, "EMP-999", "").
			Return([]user.User{}, nil)

		resp, err := svc.Filter(ctx, "EMP-999", "")

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestUserService_SearchEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().
			SearchEmployeesByName(ctx, "And").
			Return([]user.User{{UserID: 1, Name: "Andi"}}, nil)

		resp, err := svc.SearchEmployees(ctx, "And")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		repo.EXPECT().
			SearchEmployeesByName(ctx, "Zzz").
			Return([]user.User{}, nil)

		_, err := svc.SearchEmployees(ctx, "Zzz")

		assert.ErrorIs(t, err, usererrors.ErrNoUsersFound)
	})
}

func TestUserService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("deactivate", func(t *testing.T) {
		repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&user.User{UserID: 5, IsActive: true}, nil)
		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, uint(5), u.UserID)
				assert.False(t, u.IsActive)
				return nil
			})

		err := svc.UpdateStatus(ctx, 5, false)

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		err := svc.UpdateStatus(ctx, 99, true)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("update failure", func(t *testing.T) {
		repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&user.User{UserID: 5}, nil)
		repo.EXPECT().
			Update(ctx, gomock.Any()).
			Return(errors.New("db error"))

		err := svc.UpdateStatus(ctx, 5, true)

		assert.Error(t, err)
	})
}
