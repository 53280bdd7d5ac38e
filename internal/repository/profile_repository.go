package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) List() ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.DB.Order("username ASC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) FindByUsername(username string) (*model.Profile, error) {
	var p model.Profile
	err := r.DB.Where("username = ?", username).First(&p).Error
	return &p, err
}

// Two first-ever adjustments for the same username can both read
// not-found before either inserts; the loser's insert fails on the
// unique index (or a gap-lock deadlock on MySQL) and the transaction
// re-runs against the winner's committed row.
const maxAdjustAttempts = 3

var errConcurrentCreate = errors.New("profile row created concurrently")

// AdjustScore applies the increment inside one transaction, reading the
// current row under an exclusive lock so concurrent adjustments to the
// same username serialize on the database, not on an in-process mutex.
// A missing row is created with the increment as its score. Rows for
// other usernames are never touched, so adjustments to different
// usernames proceed independently.
func (r *ProfileRepository) AdjustScore(username string, increment int) (*model.Profile, error) {
	var p model.Profile
	var err error
	for attempt := 0; attempt < maxAdjustAttempts; attempt++ {
		p = model.Profile{}
		err = r.DB.Transaction(func(tx *gorm.DB) error {
			read := tx.Where("username = ?", username)
			// SQLite has no FOR UPDATE; its single-writer transactions
			// already serialize the read-modify-write.
			if tx.Dialector.Name() != "sqlite" {
				read = read.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			err := read.First(&p).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				p = model.Profile{
					Username:       username,
					Score:          increment,
					TestsAttempted: 1,
				}
				if createErr := tx.Create(&p).Error; createErr != nil {
					return fmt.Errorf("%w: %v", errConcurrentCreate, createErr)
				}
				return nil
			}
			if err != nil {
				return err
			}

			p.Score += increment
			p.TestsAttempted++
			return tx.Model(&model.Profile{}).
				Where("username = ?", username).
				Updates(map[string]interface{}{
					"score":           p.Score,
					"tests_attempted": p.TestsAttempted,
				}).Error
		})
		if err == nil {
			return &p, nil
		}
		if !errors.Is(err, errConcurrentCreate) {
			return nil, err
		}
	}
	return nil, err
}
