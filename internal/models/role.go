package models

// Role names a capability group. Roles are inert data in this release: no
// authorization decision reads them.
type Role struct {
	BaseModel
	RoleName string `gorm:"uniqueIndex;size:50;not null" json:"roleName"`
}
