package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/authclient"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/repository"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

// ProfileService owns per-user mutable profile state. Authorization is
// decided against an identity already resolved by the auth service.
type ProfileService struct {
	Profiles *repository.ProfileRepository
}

func NewProfileService(profiles *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Profiles: profiles}
}

func (s *ProfileService) List() ([]model.Profile, error) {
	return s.Profiles.List()
}

func (s *ProfileService) Get(username string) (*model.Profile, error) {
	p, err := s.Profiles.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AdjustScore applies a non-zero increment to the caller's own score.
// Strictly self-service: staff has no override here.
func (s *ProfileService) AdjustScore(caller *authclient.Identity, username string, increment int) (*model.Profile, error) {
	if increment == 0 {
		return nil, fmt.Errorf("%w: score increment must be non-zero", util.ErrValidation)
	}
	if caller == nil {
		return nil, util.ErrUnauthorized
	}
	if caller.Username != username {
		return nil, util.ErrPermissionDenied
	}

	return s.Profiles.AdjustScore(username, increment)
}
