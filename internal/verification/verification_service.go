package verification

import (
	"context"
	"errors"
	"time"

	usererrors "go-ums/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=verification_service.go -destination=mock/verification_service_mock.go -package=mock
type Service interface {
	Approve(ctx context.Context, userID, verifierID uint) (*Verification, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("verification.service"),
	}
}

// Approve marks the user's verification record as verified. The transition
// is monotonic: approving an already-verified user leaves the original
// verifier and timestamp untouched.
func (s *service) Approve(ctx context.Context, userID, verifierID uint) (*Verification, error) {
	v, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		s.logger.Error("fetch verification failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	if v.Status {
		return v, nil
	}

	now := time.Now()
	v.VerifierID = &verifierID
	v.VerifiedAt = &now
	v.Status = true

	if err := s.repo.Save(ctx, v); err != nil {
		s.logger.Error("persist verification failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user verified",
		zap.Uint("user_id", userID),
		zap.Uint("verifier_id", verifierID),
	)
	return v, nil
}
