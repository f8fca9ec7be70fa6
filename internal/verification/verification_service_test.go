package verification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	usererrors "go-ums/internal/user/errors"
	"go-ums/internal/verification"
	verificationMock "go-ums/internal/verification/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestVerificationService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := verificationMock.NewMockRepository(ctrl)
	svc := verification.NewService(repo)
	ctx := context.Background()

	t.Run("approves a pending record", func(t *testing.T) {
		repo.EXPECT().
			FindByUserID(ctx, uint(5)).
			Return(&verification.Verification{ID: 1, UserID: 5, Status: false}, nil)
		repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, v *verification.Verification) error {
				assert.True(t, v.Status)
				if assert.NotNil(t, v.VerifierID) {
					assert.Equal(t, uint(2), *v.VerifierID)
				}
				assert.NotNil(t, v.VerifiedAt)
				return nil
			})

		v, err := svc.Approve(ctx, 5, 2)

		assert.NoError(t, err)
		assert.True(t, v.Status)
	})

	t.Run("already verified is a no-op", func(t *testing.T) {
		verifier := uint(9)
		at := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().
			FindByUserID(ctx, uint(5)).
			Return(&verification.Verification{ID: 1, UserID: 5, Status: true, VerifierID: &verifier, VerifiedAt: &at}, nil)

		v, err := svc.Approve(ctx, 5, 2)

		assert.NoError(t, err)
		assert.True(t, v.Status)
		assert.Equal(t, uint(9), *v.VerifierID)
		assert.Equal(t, at, *v.VerifiedAt)
	})

	t.Run("no record means no such user", func(t *testing.T) {
		repo.EXPECT().
			FindByUserID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Approve(ctx, 99, 2)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("save failure", func(t *testing.T) {
		repo.EXPECT().
			FindByUserID(ctx, uint(5)).
			Return(&verification.Verification{ID: 1, UserID: 5}, nil)
		repo.EXPECT().
			Save(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.Approve(ctx, 5, 2)

		assert.Error(t, err)
	})
}
