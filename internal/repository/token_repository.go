package repository

import (
	"errors"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"

	"gorm.io/gorm"
)

type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) Create(token *model.AuthToken) error {
	return r.DB.Create(token).Error
}

// FindByToken is a point lookup on the token's unique index; it runs
// once per protected request across the whole system.
func (r *TokenRepository) FindByToken(token string) (*model.AuthToken, error) {
	var t model.AuthToken
	err := r.DB.Where("token = ?", token).First(&t).Error
	return &t, err
}

// Exists backs introspection: a plain existence check, no identity.
func (r *TokenRepository) Exists(token string) (bool, error) {
	_, err := r.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
