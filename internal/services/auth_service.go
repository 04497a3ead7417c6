package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/camartes/api/internal/apperrors"
	"github.com/camartes/api/internal/helpers"
	"github.com/camartes/api/internal/models"
)

// AuthService orchestrates signup and login over the user store, the OTP
// issuer and the credential hasher. The existence check at signup and the
// later insert are two separate store operations; concurrent signups for the
// same identifier can race past the check.
type AuthService struct {
	userRepo models.UserRepo
	otp      *OtpService
	logger   *slog.Logger
}

func NewAuthService(userRepo models.UserRepo, otp *OtpService, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		otp:      otp,
		logger:   logger,
	}
}

// RequestSignupOtp issues a signup code keyed by email, carrying the phone
// through for the later signup call. Fails if any user already holds the
// email or the phone.
func (as *AuthService) RequestSignupOtp(ctx context.Context, email, phone string) (string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("invalid email format: %w", apperrors.ErrBadRequest)
	}

	exists, err := as.userRepo.ExistsByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return "", fmt.Errorf("failed to check existing users: %v", err)
	}
	if exists {
		return "", apperrors.ErrConflict
	}

	code, err := as.otp.Issue(ctx, email, phone)
	if err != nil {
		return "", err
	}

	// Stand-in for the real email/SMS delivery channel.
	as.logger.Info("OTP issued", "identifier", email, "otp", code)
	return code, nil
}

// Signup completes registration with the code issued for the email. The
// phone carried on the OTP record is not cross-checked against the submitted
// phone. On success the code is consumed, so a replay fails.
func (as *AuthService) Signup(ctx context.Context, req *models.SignupRequest) error {
	ok, err := as.otp.Verify(ctx, req.Email, req.Otp)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrInvalidCode
	}

	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	hashed, err := helpers.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:          uuid.New().String(),
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		Password:    hashed,
		ReferenceID: req.ReferenceID,
		UserType:    []string{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := as.userRepo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	return as.otp.Consume(ctx, req.Email)
}

// RequestLoginOtp issues a login code keyed by the identifier, which must
// already belong to a user on the given channel.
func (as *AuthService) RequestLoginOtp(ctx context.Context, identifier, channel string) (string, error) {
	user, err := as.userRepo.FindByChannel(ctx, channel, identifier)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrNotFound
	}

	code, err := as.otp.Issue(ctx, identifier, "")
	if err != nil {
		return "", err
	}

	as.logger.Info("OTP issued", "identifier", identifier, "otp", code)
	return code, nil
}

// Login authenticates by password or by a previously issued code; the
// password branch wins when both are supplied. On success a fresh bearer
// token replaces whatever token the user held before.
func (as *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.PublicUser, error) {
	user, err := as.userRepo.FindByChannel(ctx, req.Type, req.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	switch {
	case req.Password != "":
		if !helpers.VerifyPassword(req.Password, user.Password) {
			return nil, apperrors.ErrUnauthorized
		}
	case req.Otp != "":
		ok, err := as.otp.Verify(ctx, req.Identifier, req.Otp)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrUnauthorized
		}
		if err := as.otp.Consume(ctx, req.Identifier); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrBadRequest
	}

	token := helpers.GenerateToken()
	if err := as.userRepo.SetToken(ctx, user.ID, token); err != nil {
		return nil, err
	}

	user.Token = token
	return user.Public(), nil
}
