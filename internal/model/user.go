package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleAdmin marks a reviewer account allowed on the review workbench
	// and score-attachment endpoints.
	RoleAdmin = "admin"
)

// User is gorm model for reviewer accounts. Applicants never get accounts;
// intake is a public endpoint.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Email    *string   `gorm:"uniqueIndex" json:"email"`
	GoogleID *string   `gorm:"uniqueIndex" json:"-"`
	Password string    `json:"-"`
	Role     string    `gorm:"type:text;not null" json:"role"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// MigrateAble lists every model handed to AutoMigrate.
var MigrateAble = []interface{}{
	&User{},
	&JobPosting{},
	&Candidate{},
}
