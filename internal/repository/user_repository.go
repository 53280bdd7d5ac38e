package repository

import (
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	return &user, err
}

// FindByIdentifier matches the login identifier against either the
// username or the email, case-insensitively.
func (r *UserRepository) FindByIdentifier(identifier string) (*model.User, error) {
	var user model.User
	err := r.DB.
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", identifier, identifier).
		First(&user).Error
	return &user, err
}

// ExistsByUsernameOrEmail backs the registration uniqueness check. An
// absent email only checks the username; accounts without an email
// never collide with each other.
func (r *UserRepository) ExistsByUsernameOrEmail(username string, email *string) (bool, error) {
	var count int64
	query := r.DB.Model(&model.User{})
	if email != nil {
		query = query.Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", username, *email)
	} else {
		query = query.Where("LOWER(username) = LOWER(?)", username)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
