package services

import (
	"context"
	"fmt"
	"time"

	"github.com/camartes/api/internal/apperrors"
	"github.com/camartes/api/internal/models"
)

type ProfileService struct {
	userRepo    models.UserRepo
	profileRepo models.ProfileRepo
}

func NewProfileService(userRepo models.UserRepo, profileRepo models.ProfileRepo) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// SaveInitialSelection overwrites the user's userType wholesale, then appends
// a new profile document. An unknown userId updates nothing and still
// succeeds. Repeated calls accumulate profile documents rather than updating
// the earlier one.
func (ps *ProfileService) SaveInitialSelection(ctx context.Context, req *models.InitialProfileRequest) error {
	if err := ps.userRepo.SetUserType(ctx, req.UserID, req.ProfileType); err != nil {
		return fmt.Errorf("failed to update user type: %v", err)
	}

	freelancer := req.FreelancerServices
	if freelancer == nil {
		freelancer = []string{}
	}
	business := req.BusinessServices
	if business == nil {
		business = []string{}
	}

	profile := &models.Profile{
		UserID:             req.UserID,
		ProfileType:        req.ProfileType,
		FreelancerServices: freelancer,
		BusinessServices:   business,
		CreatedAt:          time.Now().UTC(),
	}
	return ps.profileRepo.CreateProfile(ctx, profile)
}

func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := ps.profileRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrNotFound
	}
	return profile, nil
}
