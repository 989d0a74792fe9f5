package identity

import (
	"strings"

	"github.com/barrovivo/backend/internal/domain/shared"
)

// User is a storefront account. Staff users may access sales reports.
type User struct {
	shared.BaseEntity
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	FirstName    string `gorm:"type:varchar(120)"`
	LastName     string `gorm:"type:varchar(120)"`
	IsStaff      bool   `gorm:"not null;default:false"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates an active non-staff user with the given password hash
func NewUser(email, passwordHash, firstName, lastName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Active:       true,
	}, nil
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
