package user

import (
	"context"

	usererrors "go-ums/internal/user/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	ListEmployeesByOffice(ctx context.Context, officeID uint) ([]UserResponse, error)
	Filter(ctx context.Context, employeeID, designation string) ([]UserResponse, error)
	SearchEmployees(ctx context.Context, term string) ([]UserResponse, error)
	UpdateStatus(ctx context.Context, userID uint, isActive bool) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("user.service"),
	}
}

func (s *service) ListEmployeesByOffice(ctx context.Context, officeID uint) ([]UserResponse, error) {
	users, err := s.repo.FindEmployeesByOffice(ctx, officeID)
	if err != nil {
		s.logger.Error("list employees by office failed", zap.Uint("office_id", officeID), zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	return mapToListResponse(users), nil
}

func (s *service) Filter(ctx context.Context, employeeID, designation string) ([]UserResponse, error) {
	users, err := s.repo.Filter(ctx, employeeID, designation)
	if err != nil {
		s.logger.Error("filter users failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	return mapToListResponse(users), nil
}

// SearchEmployees reports not-found for an empty result, matching the
// legacy search endpoint.
func (s *service) SearchEmployees(ctx context.Context, term string) ([]UserResponse, error) {
	users, err := s.repo.SearchEmployeesByName(ctx, term)
	if err != nil {
		s.logger.Error("search employees failed", zap.String("term", term), zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	if len(users) == 0 {
		return nil, usererrors.ErrNoUsersFound
	}

	return mapToListResponse(users), nil
}

func (s *service) UpdateStatus(ctx context.Context, userID uint, isActive bool) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return MapRepositoryError(err)
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user status failed", zap.Uint("user_id", userID), zap.Error(err))
		return MapRepositoryError(err)
	}

	s.logger.Info("user status updated",
		zap.Uint("user_id", userID),
		zap.Bool("is_active", isActive),
	)
	return nil
}
