package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlayerState is the per-user state document: the same `{userState, penguin}`
// blob the client keeps in local storage, mirrored here field-for-field.
// The two sides are stored as jsonb so a mirror push replaces each field
// wholesale (no deep merge), matching the client's sync semantics.
type PlayerState struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	UserState datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"userState"`
	Penguin   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"penguin"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
}
