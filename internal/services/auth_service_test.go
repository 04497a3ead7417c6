package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/camartes/api/internal/apperrors"
	"github.com/camartes/api/internal/models"
)

func newTestAuthService() (*AuthService, *models.MemoryRepo) {
	repo := models.NewMemoryRepo()
	otp := NewOtpService(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService(repo, otp, logger), repo
}

func signupTestUser(t *testing.T, svc *AuthService) {
	t.Helper()
	ctx := context.Background()

	code, err := svc.RequestSignupOtp(ctx, "a@x.com", "+1000")
	if err != nil {
		t.Fatalf("RequestSignupOtp failed: %v", err)
	}
	err = svc.Signup(ctx, &models.SignupRequest{
		FullName:        "Ada Photographer",
		Phone:           "+1000",
		Email:           "a@x.com",
		Password:        "Secur3!",
		ConfirmPassword: "Secur3!",
		Otp:             code,
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
}

func TestSignupFlow(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAuthService()

	code, err := svc.RequestSignupOtp(ctx, "a@x.com", "+1000")
	if err != nil {
		t.Fatalf("RequestSignupOtp failed: %v", err)
	}

	req := &models.SignupRequest{
		FullName:        "Ada Photographer",
		Phone:           "+1000",
		Email:           "a@x.com",
		Password:        "Secur3!",
		ConfirmPassword: "Secur3!",
		Otp:             code,
	}
	if err := svc.Signup(ctx, req); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	user, err := repo.FindByChannel(ctx, models.ChannelEmail, "a@x.com")
	if err != nil || user == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "Secur3!" {
		t.Error("password stored in plaintext")
	}
	if user.ID == "" {
		t.Error("user id not assigned")
	}
	if user.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
	if user.ProfileCompleted {
		t.Error("profileCompleted should default to false")
	}

	// The OTP was consumed: replaying it is an invalid code.
	if err := svc.Signup(ctx, req); !errors.Is(err, apperrors.ErrInvalidCode) {
		t.Errorf("replayed signup OTP: got %v, want ErrInvalidCode", err)
	}
}

func TestSignupOtpConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	// Same email, different phone
	if _, err := svc.RequestSignupOtp(ctx, "a@x.com", "+2000"); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate email: got %v, want ErrConflict", err)
	}
	// Same phone, different email
	if _, err := svc.RequestSignupOtp(ctx, "b@x.com", "+1000"); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate phone: got %v, want ErrConflict", err)
	}
	// Fresh identity is fine
	if _, err := svc.RequestSignupOtp(ctx, "b@x.com", "+2000"); err != nil {
		t.Errorf("fresh identity rejected: %v", err)
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	code, err := svc.RequestSignupOtp(ctx, "a@x.com", "+1000")
	if err != nil {
		t.Fatalf("RequestSignupOtp failed: %v", err)
	}

	err = svc.Signup(ctx, &models.SignupRequest{
		FullName:        "Ada Photographer",
		Phone:           "+1000",
		Email:           "a@x.com",
		Password:        "Secur3!",
		ConfirmPassword: "different",
		Otp:             code,
	})
	if !errors.Is(err, apperrors.ErrPasswordMismatch) {
		t.Errorf("got %v, want ErrPasswordMismatch", err)
	}

	// OTP check happens before the confirmation check
	err = svc.Signup(ctx, &models.SignupRequest{
		FullName:        "Ada Photographer",
		Phone:           "+1000",
		Email:           "a@x.com",
		Password:        "Secur3!",
		ConfirmPassword: "different",
		Otp:             "000000",
	})
	if !errors.Is(err, apperrors.ErrInvalidCode) {
		t.Errorf("got %v, want ErrInvalidCode", err)
	}
}

func TestSignupPhoneNotCrossChecked(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAuthService()

	// The code is keyed by email; the phone rides along as auxiliary data
	// and is never re-validated at signup time.
	code, err := svc.RequestSignupOtp(ctx, "a@x.com", "+1000")
	if err != nil {
		t.Fatalf("RequestSignupOtp failed: %v", err)
	}

	err = svc.Signup(ctx, &models.SignupRequest{
		FullName:        "Ada Photographer",
		Phone:           "+2000",
		Email:           "a@x.com",
		Password:        "Secur3!",
		ConfirmPassword: "Secur3!",
		Otp:             code,
	})
	if err != nil {
		t.Fatalf("signup with a different phone rejected: %v", err)
	}

	user, err := repo.FindByChannel(ctx, models.ChannelEmail, "a@x.com")
	if err != nil || user == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Phone != "+2000" {
		t.Errorf("phone = %q, want the submitted +2000, not the OTP's +1000", user.Phone)
	}
}

func TestLoginWithPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	first, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Password:   "Secur3!",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if first.Token == "" {
		t.Fatal("no token issued")
	}
	if first.ID == "" || first.Email != "a@x.com" || first.Phone != "+1000" {
		t.Errorf("unexpected user view: %+v", first)
	}

	// Each login replaces the token with a fresh one.
	second, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Password:   "Secur3!",
	})
	if err != nil {
		t.Fatalf("second Login failed: %v", err)
	}
	if second.Token == first.Token {
		t.Error("token was not rotated on login")
	}
}

func TestLoginByPhone(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	user, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "+1000",
		Type:       models.ChannelPhone,
		Password:   "Secur3!",
	})
	if err != nil {
		t.Fatalf("Login by phone failed: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("resolved wrong user: %+v", user)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAuthService()
	signupTestUser(t, svc)

	_, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Password:   "wrong",
	})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}

	user, _ := repo.FindByChannel(ctx, models.ChannelEmail, "a@x.com")
	if user.Token != "" {
		t.Error("token persisted for a failed login")
	}
}

func TestLoginOtpRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	code, err := svc.RequestLoginOtp(ctx, "a@x.com", models.ChannelEmail)
	if err != nil {
		t.Fatalf("RequestLoginOtp failed: %v", err)
	}

	req := &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Otp:        code,
	}
	user, err := svc.Login(ctx, req)
	if err != nil {
		t.Fatalf("OTP login failed: %v", err)
	}
	if user.Token == "" {
		t.Error("no token issued on OTP login")
	}

	// The code was consumed on success: a replay is unauthorized.
	if _, err := svc.Login(ctx, req); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("replayed login OTP: got %v, want ErrUnauthorized", err)
	}
}

func TestLoginOtpWrongCode(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	code, err := svc.RequestLoginOtp(ctx, "a@x.com", models.ChannelEmail)
	if err != nil {
		t.Fatalf("RequestLoginOtp failed: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err = svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Otp:        wrong,
	})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}

	// A failed attempt does not consume the live code.
	if _, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Otp:        code,
	}); err != nil {
		t.Errorf("correct code rejected after a failed attempt: %v", err)
	}
}

func TestLoginPasswordBranchWins(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	code, err := svc.RequestLoginOtp(ctx, "a@x.com", models.ChannelEmail)
	if err != nil {
		t.Fatalf("RequestLoginOtp failed: %v", err)
	}

	// A wrong password fails even alongside a correct OTP, and the OTP
	// branch is never reached, so the code stays live.
	_, err = svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Password:   "wrong",
		Otp:        code,
	})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Otp:        code,
	}); err != nil {
		t.Errorf("code consumed by a password-branch failure: %v", err)
	}

	// A correct password wins even alongside a garbage OTP.
	code, err = svc.RequestLoginOtp(ctx, "a@x.com", models.ChannelEmail)
	if err != nil {
		t.Fatalf("RequestLoginOtp failed: %v", err)
	}
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	user, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
		Password:   "Secur3!",
		Otp:        wrong,
	})
	if err != nil {
		t.Fatalf("correct password rejected because of the stray OTP: %v", err)
	}
	if user.Token == "" {
		t.Error("no token issued")
	}
}

func TestLoginWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()
	signupTestUser(t, svc)

	_, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "a@x.com",
		Type:       models.ChannelEmail,
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("got %v, want ErrBadRequest", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService()

	if _, err := svc.Login(ctx, &models.LoginRequest{
		Identifier: "nobody@x.com",
		Type:       models.ChannelEmail,
		Password:   "whatever",
	}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("login: got %v, want ErrNotFound", err)
	}

	if _, err := svc.RequestLoginOtp(ctx, "nobody@x.com", models.ChannelEmail); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("send-otp: got %v, want ErrNotFound", err)
	}
}
