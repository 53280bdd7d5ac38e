package model

// Profile is the user service's per-user mutable state. The username
// mirrors an auth-service account by convention only; there is no
// cross-database foreign key. At most one row exists per username, and
// the row is created lazily on the first score adjustment.
type Profile struct {
	BaseModel
	Username       string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email          string `gorm:"size:100" json:"email"`
	FirstName      string `gorm:"size:100" json:"first_name"`
	LastName       string `gorm:"size:100" json:"last_name"`
	Score          int    `gorm:"default:0" json:"score"`
	TestsAttempted int    `gorm:"default:0" json:"test_attempted"`
}

func (Profile) TableName() string {
	return "profiles"
}
