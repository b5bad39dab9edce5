package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Field limits shared by validation and schema.
const (
	CategoryMaxLen    = 50
	DescriptionMaxLen = 255
)

// AmountScale is the number of decimal places stored for amounts.
const AmountScale = 2

// MinAmount is the smallest accepted expense amount.
var MinAmount = decimal.RequireFromString("0.01")

// Expense is a single spending record owned by a user.
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index;<-:create"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	Category    string          `json:"category" gorm:"size:50;not null;index"`
	Description string          `json:"description" gorm:"size:255"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"<-:create"`

	Approval Approval `json:"approval" gorm:"embedded"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeSave stores dates in UTC. Date columns are compared as text on sqlite,
// so every stored instant and every bound must share one offset.
func (e *Expense) BeforeSave(*gorm.DB) error {
	e.Date = e.Date.UTC()
	return nil
}

// ExpenseContent holds the owner-editable fields of an expense.
type ExpenseContent struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
}

// ContentColumns are the only columns an owner update may write.
var ContentColumns = []string{"date", "category", "description", "amount"}

// Apply copies the content fields onto e.
func (c ExpenseContent) Apply(e *Expense) {
	e.Date = c.Date
	e.Category = c.Category
	e.Description = c.Description
	e.Amount = c.Amount
}
