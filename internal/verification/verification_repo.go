package verification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=verification_repo.go -destination=mock/verification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, v *Verification) error
	FindByUserID(ctx context.Context, userID uint) (*Verification, error)
	Save(ctx context.Context, v *Verification) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, v *Verification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindByUserID(ctx context.Context, userID uint) (*Verification, error) {
	var v Verification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) Save(ctx context.Context, v *Verification) error {
	return r.db.WithContext(ctx).Save(v).Error
}
