package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleCook   UserRole = "Cook"
	RoleCadet  UserRole = "Cadet"
	RoleClient UserRole = "Client"
)

// NormalizeRole canonicalizes a raw role string. The legacy panel stored the
// admin role as "Administrador"; every identity boundary (registration, login,
// token issuance, claim extraction, session load) must pass through here so
// role comparisons stay exact afterwards.
func NormalizeRole(raw string) (UserRole, bool) {
	if raw == "Administrador" {
		return RoleAdmin, true
	}
	role := UserRole(raw)
	switch role {
	case RoleAdmin, RoleCook, RoleCadet, RoleClient:
		return role, true
	}
	return "", false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'Client'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Variant data, one row matching the role. Replaces single-table subtype
	// columns so non-applicable fields never exist on a user.
	ClientProfile *ClientProfile `json:"client_profile,omitempty" gorm:"foreignKey:UserID"`
	CadetProfile  *CadetProfile  `json:"cadet_profile,omitempty" gorm:"foreignKey:UserID"`
	CookProfile   *CookProfile   `json:"cook_profile,omitempty" gorm:"foreignKey:UserID"`
}

// ClientProfile carries delivery data for client accounts
type ClientProfile struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	UserID  uint   `json:"-" gorm:"uniqueIndex;not null"`
	Address string `json:"address" gorm:"not null"`
	Phone   string `json:"phone" gorm:"not null"`
}

// CadetProfile carries courier data for cadet accounts
type CadetProfile struct {
	ID            uint   `json:"-" gorm:"primaryKey"`
	UserID        uint   `json:"-" gorm:"uniqueIndex;not null"`
	TransportMode string `json:"transport_mode"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
}

// CookProfile carries kitchen data for cook accounts
type CookProfile struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UserID    uint   `json:"-" gorm:"uniqueIndex;not null"`
	Specialty string `json:"specialty"`
}
