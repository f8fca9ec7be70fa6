package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindEmployeesByOffice(ctx context.Context, officeID uint) ([]User, error)
	Filter(ctx context.Context, employeeID, designation string) ([]User, error)
	SearchEmployeesByName(ctx context.Context, term string) ([]User, error)
	Update(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to a transaction handle so multi-table
// writes share one commit/rollback boundary.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email_address = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindEmployeesByOffice(ctx context.Context, officeID uint) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("office_id = ?", officeID).
		Where("user_type = ?", TypeEmployee).
		Find(&users).Error
	return users, err
}

// Filter applies exact-match predicates; absent filters are skipped.
func (r *repository) Filter(ctx context.Context, employeeID, designation string) ([]User, error) {
	q := r.db.WithContext(ctx)
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if designation != "" {
		q = q.Where("designation = ?", designation)
	}

	var users []User
	err := q.Find(&users).Error
	return users, err
}

func (r *repository) SearchEmployeesByName(ctx context.Context, term string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("user_type = ?", TypeEmployee).
		Where("name LIKE ?", "%"+term+"%").
		Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
