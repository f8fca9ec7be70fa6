package role

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	nameMapCacheKey = "roles:namemap"
	nameMapCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (Role, error)
	GetAll(ctx context.Context) ([]Role, error)
	// NameMap returns role_id -> role name for response enrichment.
	NameMap(ctx context.Context) (map[uint]string, error)
}

type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Status      *bool   `json:"status"`
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("role.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (Role, error) {
	r := Role{
		Name:        req.Name,
		Description: req.Description,
		Status:      true,
	}
	if req.Status != nil {
		r.Status = *req.Status
	}

	if err := s.repo.Create(ctx, &r); err != nil {
		s.logger.Error("create role failed", zap.Error(err))
		return Role{}, err
	}

	// Role master data changed; drop the cached name map.
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, nameMapCacheKey).Err(); err != nil {
			s.logger.Error("invalidate role cache failed", zap.Error(err))
		}
	}

	s.logger.Info("role created", zap.Uint("role_id", r.RoleID), zap.String("name", r.Name))
	return r, nil
}

func (s *service) GetAll(ctx context.Context) ([]Role, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) NameMap(ctx context.Context) (map[uint]string, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, nameMapCacheKey).Result(); err == nil {
			var m map[uint]string
			if json.Unmarshal([]byte(cached), &m) == nil {
				return m, nil
			}
		}
	}

	// Collapse concurrent rebuilds into one roles fetch.
	v, err, _ := s.sf.Do(nameMapCacheKey, func() (interface{}, error) {
		roles, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		m := make(map[uint]string, len(roles))
		for _, r := range roles {
			m[r.RoleID] = r.Name
		}

		if s.rdb != nil {
			if data, err := json.Marshal(m); err == nil {
				s.rdb.Set(ctx, nameMapCacheKey, data, nameMapCacheTTL)
			}
		}

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(map[uint]string), nil
}
