package model

import "time"

// User represents an expense owner. Credentials are owned by the auth boundary;
// PasswordHash is only populated for locally seeded accounts.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255"` // Never expose in JSON
	ExternalAuth bool      `json:"external_auth" gorm:"default:false"`
	Role         string    `json:"role,omitempty" gorm:"size:50;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations. Deleting a user does not cascade to expenses.
	Expenses []Expense `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
