package userdetails

import (
	"context"
	"errors"
	"time"

	"go-ums/internal/role"
	"go-ums/internal/user"
	userdetailserrors "go-ums/internal/userdetails/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=userdetails_service.go -destination=mock/userdetails_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDetailsRequest) (*UserDetails, error)
	Update(ctx context.Context, detailsID uint, req UpdateDetailsRequest) (*UserDetails, error)
	GetByUserID(ctx context.Context, userID uint) (*UserDetails, error)
	ListAll(ctx context.Context) ([]EnrichedDetailsResponse, error)
	UpdateBasic(ctx context.Context, userID uint, req UpdateBasicRequest) (*UserDetails, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	users  user.Repository
	roles  role.Service
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, users user.Repository, roles role.Service) Service {
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		roles:  roles,
		logger: zap.L().Named("userdetails.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateDetailsRequest) (*UserDetails, error) {
	dob := time.Now()
	if req.DateOfBirth != nil {
		parsed, err := ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, userdetailserrors.ErrInvalidDateOfBirth
		}
		dob = parsed
	}

	d := &UserDetails{
		UserID:               req.UserID,
		EmployeeID:           req.EmployeeID,
		Name:                 req.Name,
		Address:              req.Address,
		City:                 req.City,
		Pincode:              req.Pincode,
		State:                req.State,
		Country:              req.Country,
		Phone:                req.Phone,
		EmailAddress:         req.EmailAddress,
		OfficialEmailAddress: req.OfficialEmailAddress,
		Gender:               req.Gender,
		DateOfBirth:          dob,
		Forte:                req.Forte,
		OtherSkills:          req.OtherSkills,
		PanCardNo:            req.PanCardNo,
		PassportNo:           req.PassportNo,
		AadharNo:             req.AadharNo,
		Nationality:          req.Nationality,
		Religion:             req.Religion,
		MaritalStatus:        req.MaritalStatus,
		EmploymentOfSpouse:   req.EmploymentOfSpouse,
		NoOfChildren:         req.NoOfChildren,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("create user details failed", zap.Uint("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user details created", zap.Uint("details_id", d.DetailsID), zap.Uint("user_id", d.UserID))
	return d, nil
}

// Update overwrites only the fields present in the patch; absent fields
// keep their stored values.
func (s *service) Update(ctx context.Context, detailsID uint, req UpdateDetailsRequest) (*UserDetails, error) {
	d, err := s.repo.FindByID(ctx, detailsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdetailserrors.ErrDetailsNotFound
		}
		return nil, err
	}

	if err := applyPatch(d, req); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, d); err != nil {
		s.logger.Error("update user details failed", zap.Uint("details_id", detailsID), zap.Error(err))
		return nil, err
	}

	return d, nil
}

func applyPatch(d *UserDetails, req UpdateDetailsRequest) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&d.EmployeeID, req.EmployeeID)
	setString(&d.Name, req.Name)
	setString(&d.Address, req.Address)
	setString(&d.City, req.City)
	setString(&d.Pincode, req.Pincode)
	setString(&d.State, req.State)
	setString(&d.Country, req.Country)
	setString(&d.Phone, req.Phone)
	setString(&d.EmailAddress, req.EmailAddress)
	setString(&d.OfficialEmailAddress, req.OfficialEmailAddress)
	setString(&d.Gender, req.Gender)
	setString(&d.PanCardNo, req.PanCardNo)
	setString(&d.PassportNo, req.PassportNo)
	setString(&d.AadharNo, req.AadharNo)
	setString(&d.Nationality, req.Nationality)
	setString(&d.Religion, req.Religion)
	setString(&d.MaritalStatus, req.MaritalStatus)

	if req.Forte != nil {
		d.Forte = req.Forte
	}
	if req.OtherSkills != nil {
		d.OtherSkills = req.OtherSkills
	}
	if req.EmploymentOfSpouse != nil {
		d.EmploymentOfSpouse = req.EmploymentOfSpouse
	}
	if req.NoOfChildren != nil {
		d.NoOfChildren = req.NoOfChildren
	}

	if req.DateOfBirth != nil {
		dob, err := ParseDate(*req.DateOfBirth)
		if err != nil {
			return userdetailserrors.ErrInvalidDateOfBirth
		}
		d.DateOfBirth = dob
	}

	return nil
}

func (s *service) GetByUserID(ctx context.Context, userID uint) (*UserDetails, error) {
	d, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdetailserrors.ErrDetailsNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListAll returns every non-client profile enriched with its role name,
// resolved through the cached role map.
func (s *service) ListAll(ctx context.Context) ([]EnrichedDetailsResponse, error) {
	rows, err := s.repo.ListWithRoles(ctx)
	if err != nil {
		s.logger.Error("list user details failed", zap.Error(err))
		return nil, err
	}

	if len(rows) == 0 {
		return nil, userdetailserrors.ErrNoDetailsFound
	}

	roleNames, err := s.roles.NameMap(ctx)
	if err != nil {
		s.logger.Error("resolve role names failed", zap.Error(err))
		return nil, err
	}

	enriched := make([]EnrichedDetailsResponse, len(rows))
	for i, row := range rows {
		name := PlaceholderNA
		if row.RoleID != nil {
			if n, ok := roleNames[*row.RoleID]; ok {
				name = n
			}
		}
		enriched[i] = EnrichedDetailsResponse{
			DetailsWithRole: row,
			RoleName:        name,
		}
	}

	return enriched, nil
}

// UpdateBasic patches the profile row and, when name is present, the
// owning user's name. Both writes share one transaction.
func (s *service) UpdateBasic(ctx context.Context, userID uint, req UpdateBasicRequest) (*UserDetails, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update basic begin tx failed", zap.Error(tx.Error))
		return nil, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdetailserrors.ErrDetailsNotFound
		}
		return nil, err
	}

	patch := UpdateDetailsRequest{
		Name:         req.Name,
		Phone:        req.Phone,
		DateOfBirth:  req.Birthday,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Country:      req.Country,
		Gender:       req.Gender,
		Forte:        req.Forte,
		OtherSkills:  req.OtherSkills,
		EmailAddress: req.Email,
	}
	if err := applyPatch(d, patch); err != nil {
		return nil, err
	}

	if err := qtx.Save(ctx, d); err != nil {
		s.logger.Error("update basic save details failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		userTx := s.users.WithTx(tx)
		u, err := userTx.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, userdetailserrors.ErrDetailsNotFound
			}
			return nil, err
		}
		u.Name = *req.Name
		if err := userTx.Update(ctx, u); err != nil {
			s.logger.Error("update basic save user failed", zap.Uint("user_id", userID), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update basic commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("basic profile updated", zap.Uint("user_id", userID))
	return d, nil
}
