package userdetails

import (
	"context"

	"go-ums/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=userdetails_repo.go -destination=mock/userdetails_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, d *UserDetails) error
	FindByID(ctx context.Context, detailsID uint) (*UserDetails, error)
	FindByUserID(ctx context.Context, userID uint) (*UserDetails, error)
	Save(ctx context.Context, d *UserDetails) error
	ListWithRoles(ctx context.Context) ([]DetailsWithRole, error)
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

func (r *repository) Create(ctx context.Context, d *UserDetails) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, detailsID uint) (*UserDetails, error) {
	var d UserDetails
	err := r.db.WithContext(ctx).First(&d, "details_id = ?", detailsID).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uint) (*UserDetails, error) {
	var d UserDetails
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Save(ctx context.Context, d *UserDetails) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// ListWithRoles joins profile rows with their owning user, excluding
// client-type accounts.
func (r *repository) ListWithRoles(ctx context.Context) ([]DetailsWithRole, error) {
	var rows []DetailsWithRole
	err := r.db.WithContext(ctx).
		Table(`"User_Details" ud`).
		Select("ud.*, u.role_id").
		Joins(`JOIN "Users" u ON u.user_id = ud.user_id`).
		Where("u.user_type <> ?", user.TypeClient).
		Scan(&rows).Error
	return rows, err
}
