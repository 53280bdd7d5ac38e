package model

import "time"

// AuthToken binds an opaque bearer token to the account that minted it.
// One account may hold any number of live tokens; there is no expiry
// column, a token stays valid until the row is purged.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	Username  string    `gorm:"size:100;index;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuthToken) TableName() string {
	return "tokens"
}
