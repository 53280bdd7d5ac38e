package service

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/repository"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// AuthService owns accounts and the token store. It is the only
// component that ever sees a password or writes a token row.
type AuthService struct {
	Users  *repository.UserRepository
	Tokens *repository.TokenRepository

	// bcrypt is CPU-bound; bound the number of concurrent digests so a
	// login storm cannot starve every worker.
	bcryptSem chan struct{}
}

func NewAuthService(users *repository.UserRepository, tokens *repository.TokenRepository) *AuthService {
	maxBcrypt := runtime.NumCPU() - 1
	if maxBcrypt < 1 {
		maxBcrypt = 1
	}
	return &AuthService{
		Users:     users,
		Tokens:    tokens,
		bcryptSem: make(chan struct{}, maxBcrypt),
	}
}

func (s *AuthService) hashPassword(password string) (string, error) {
	s.bcryptSem <- struct{}{}
	defer func() { <-s.bcryptSem }()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func (s *AuthService) comparePassword(hashed, plain string) error {
	s.bcryptSem <- struct{}{}
	defer func() { <-s.bcryptSem }()
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// Register stores a new account with a one-way digest of the password.
// The staff flag defaults to false unless explicitly requested.
func (s *AuthService) Register(user *model.User, password string) error {
	if !util.IsValidInput(user.Username, minUsernameLen) {
		return fmt.Errorf("%w: username must be at least %d characters", util.ErrValidation, minUsernameLen)
	}
	if !util.IsValidInput(password, minPasswordLen) {
		return fmt.Errorf("%w: password must be at least %d characters", util.ErrValidation, minPasswordLen)
	}
	if user.Email != nil && strings.TrimSpace(*user.Email) == "" {
		user.Email = nil
	}
	if user.Email != nil && !util.IsValidEmail(*user.Email) {
		return fmt.Errorf("%w: malformed email", util.ErrValidation)
	}

	exists, err := s.Users.ExistsByUsernameOrEmail(user.Username, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrAlreadyRegistered
	}

	hashed, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.Users.Create(user)
}

// Login matches the identifier against username or email and, on a
// digest match, mints a fresh token. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(identifier, password string) (string, bool, error) {
	if !util.IsValidInput(identifier, minUsernameLen) || !util.IsValidInput(password, minPasswordLen) {
		return "", false, fmt.Errorf("%w: missing credentials", util.ErrValidation)
	}

	user, err := s.Users.FindByIdentifier(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", false, err
	}

	if err := s.comparePassword(user.Password, password); err != nil {
		return "", false, util.ErrInvalidCredentials
	}

	token, err := util.NewToken()
	if err != nil {
		return "", false, err
	}

	if err := s.Tokens.Create(&model.AuthToken{Token: token, Username: user.Username}); err != nil {
		return "", false, err
	}

	return token, user.IsStaff, nil
}

// Validate reports token liveness only. It never fails on an unknown
// token and leaks no identity.
func (s *AuthService) Validate(token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.Tokens.Exists(token)
}

// Resolve joins the token to its owning account and returns the
// identity record other services authorize against.
func (s *AuthService) Resolve(token string) (*model.User, error) {
	if token == "" {
		return nil, util.ErrUnauthorized
	}

	t, err := s.Tokens.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	user, err := s.Users.FindByUsername(t.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
