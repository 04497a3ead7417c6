package services

import (
	"context"
	"fmt"
	"time"

	"github.com/camartes/api/internal/helpers"
	"github.com/camartes/api/internal/models"
)

// OtpService issues, verifies and consumes one-time codes. There is at most
// one live code per identifier: issuing again overwrites the previous record
// and resets its issuance timestamp.
type OtpService struct {
	otpRepo  models.OtpRepo
	generate func() string
}

func NewOtpService(otpRepo models.OtpRepo) *OtpService {
	return &OtpService{
		otpRepo:  otpRepo,
		generate: helpers.GenerateOtp,
	}
}

// NewOtpServiceWithGenerator allows a deterministic code generator, used by
// tests.
func NewOtpServiceWithGenerator(otpRepo models.OtpRepo, generate func() string) *OtpService {
	return &OtpService{
		otpRepo:  otpRepo,
		generate: generate,
	}
}

// Issue generates a code and persists it keyed by identifier. The phone is
// optional auxiliary data carried through the signup flow; it is stored but
// never cross-checked at verification time. The code is returned to the
// caller, which stands in for a real delivery channel.
func (s *OtpService) Issue(ctx context.Context, identifier, phone string) (string, error) {
	code := s.generate()

	record := &models.OtpRecord{
		Identifier: identifier,
		Otp:        code,
		Phone:      phone,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.otpRepo.UpsertOtp(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store otp: %v", err)
	}
	return code, nil
}

// Verify reports whether a live code exists for identifier and matches. It
// does not delete the record; consumption is the caller's responsibility
// after a successful action.
func (s *OtpService) Verify(ctx context.Context, identifier, code string) (bool, error) {
	record, err := s.otpRepo.FindOtp(ctx, identifier)
	if err != nil {
		return false, fmt.Errorf("failed to look up otp: %v", err)
	}
	return record != nil && record.Otp == code, nil
}

// Consume deletes the record for identifier, idempotently.
func (s *OtpService) Consume(ctx context.Context, identifier string) error {
	return s.otpRepo.DeleteOtp(ctx, identifier)
}
