package models

// User represents a login account. Roles are loaded eagerly on every read.
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	// The password is stored in clear text to match the demo dataset. Known
	// deficiency: hash it before using this model in a real deployment.
	Password string `gorm:"size:255" json:"-"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles,omitempty"`
}
