package auth

import (
	"context"
	"errors"
	"time"

	autherrors "go-ums/internal/auth/errors"
	"go-ums/internal/user"
	"go-ums/internal/userdetails"
	"go-ums/internal/verification"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Status(ctx context.Context, userID uint) (StatusResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
}

type service struct {
	db            *gorm.DB
	tokens        *TokenManager
	users         user.Repository
	details       userdetails.Repository
	verifications verification.Repository
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	tokens *TokenManager,
	users user.Repository,
	details userdetails.Repository,
	verifications verification.Repository,
) Service {
	return &service{
		db:            db,
		tokens:        tokens,
		users:         users,
		details:       details,
		verifications: verifications,
		logger:        zap.L().Named("auth.service"),
	}
}

// Register creates a user together with its pending verification record
// and profile row. The three inserts share one transaction: either all
// rows exist afterwards or none do.
func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return err
	}

	u := &user.User{
		Username:     req.Username,
		Password:     hashed,
		EmailAddress: req.EmailAddress,
		IsActive:     true,
		Name:         req.Name,
		ReportedTo:   req.ReportedTo,
		EmployeeID:   req.EmployeeID,
		PhoneNo:      req.PhoneNo,
		Department:   req.Department,
		Designation:  req.Designation,
		RoleID:       req.RoleID,
		UserType:     req.UserType,
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	// Legacy behavior: unassigned users land in office 1.
	officeID := uint(1)
	if req.OfficeID != nil {
		officeID = *req.OfficeID
	}
	u.OfficeID = &officeID

	if req.JoiningDate != nil {
		jd, err := userdetails.ParseDate(*req.JoiningDate)
		if err != nil {
			return autherrors.ErrInvalidJoiningDate
		}
		u.JoiningDate = &jd
	}

	dob := time.Now()
	if req.DateOfBirth != nil {
		dob, err = userdetails.ParseDate(*req.DateOfBirth)
		if err != nil {
			return autherrors.ErrInvalidDateOfBirth
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("register begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	if err := s.users.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Warn("register create user failed", zap.String("username", req.Username), zap.Error(err))
		return user.MapRepositoryError(err)
	}

	if err := s.verifications.WithTx(tx).Create(ctx, verification.NewPending(u.UserID)); err != nil {
		s.logger.Error("register create verification failed", zap.Uint("user_id", u.UserID), zap.Error(err))
		return err
	}

	d := s.buildDetails(req, u.UserID, dob)
	if err := s.details.WithTx(tx).Create(ctx, d); err != nil {
		s.logger.Error("register create details failed", zap.Uint("user_id", u.UserID), zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", u.UserID),
		zap.String("username", u.Username),
		zap.String("user_type", u.UserType),
	)
	return nil
}

func (s *service) buildDetails(req RegisterRequest, userID uint, dob time.Time) *userdetails.UserDetails {
	children := 0
	if req.NoOfChildren != nil {
		children = *req.NoOfChildren
	}

	return &userdetails.UserDetails{
		UserID:               userID,
		EmployeeID:           orNA(req.EmployeeID),
		Name:                 req.Name,
		Address:              orNA(req.Address),
		City:                 orNA(req.City),
		Pincode:              orNA(req.Pincode),
		State:                orNA(req.State),
		Country:              orNA(req.Country),
		Phone:                req.PhoneNo,
		EmailAddress:         req.EmailAddress,
		OfficialEmailAddress: orNA(req.OfficialEmailAddress),
		Gender:               orNA(req.Gender),
		DateOfBirth:          dob,
		Forte:                naPtr(req.Forte),
		OtherSkills:          naPtr(req.OtherSkills),
		PanCardNo:            orNA(req.PanCardNo),
		PassportNo:           orNA(req.PassportNo),
		AadharNo:             orNA(req.AadharNo),
		Nationality:          orNA(req.Nationality),
		Religion:             orNA(req.Religion),
		MaritalStatus:        orNA(req.MaritalStatus),
		EmploymentOfSpouse:   naPtr(req.EmploymentOfSpouse),
		NoOfChildren:         &children,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Absent user and wrong password answer identically.
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	if !CheckPassword(password, u.Password) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	verified := s.verificationStatus(ctx, u.UserID)

	accessToken, err := s.tokens.IssueAccessToken(u.UserID, u.Username, u.UserType)
	if err != nil {
		return LoginResponse{}, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(u.UserID, u.Username, u.UserType)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("user logged in", zap.Uint("user_id", u.UserID))

	return LoginResponse{
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		Role:               u.UserType,
		UserID:             u.UserID,
		VerificationStatus: verified,
	}, nil
}

func (s *service) Status(ctx context.Context, userID uint) (StatusResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResponse{}, autherrors.ErrUserNotFound
		}
		return StatusResponse{}, err
	}

	return StatusResponse{
		IsAuthenticated:    true,
		Role:               u.UserType,
		UserID:             u.UserID,
		VerificationStatus: s.verificationStatus(ctx, u.UserID),
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginResponse, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return LoginResponse{}, err
	}

	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if !u.IsActive {
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	newAccess, err := s.tokens.IssueAccessToken(u.UserID, u.Username, u.UserType)
	if err != nil {
		return LoginResponse{}, err
	}
	newRefresh, err := s.tokens.IssueRefreshToken(u.UserID, u.Username, u.UserType)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken:        newAccess,
		RefreshToken:       newRefresh,
		Role:               u.UserType,
		UserID:             u.UserID,
		VerificationStatus: s.verificationStatus(ctx, u.UserID),
	}, nil
}

// verificationStatus treats a missing row as pending.
func (s *service) verificationStatus(ctx context.Context, userID uint) bool {
	v, err := s.verifications.FindByUserID(ctx, userID)
	if err != nil {
		return false
	}
	return v.Status
}

func orNA(v *string) string {
	if v != nil && *v != "" {
		return *v
	}
	return userdetails.PlaceholderNA
}

func naPtr(v *string) *string {
	s := orNA(v)
	return &s
}
