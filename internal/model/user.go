package model

import "time"

// User is an account held by the auth service. The username is never
// renamed; the password column only ever stores a bcrypt digest. Email
// is optional and stored as NULL when absent, so the unique index only
// constrains accounts that actually have one.
type User struct {
	BaseModel
	Username   string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email      *string   `gorm:"size:100;uniqueIndex" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	FirstName  string    `gorm:"size:100" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	IsStaff    bool      `gorm:"default:false" json:"is_staff"`
	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}

func (User) TableName() string {
	return "users"
}

// EmailOrEmpty flattens the optional email for wire shapes that always
// carry the field.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
