package model

import "time"

// ApprovalStatus is the lifecycle tag of an expense in the manager workflow.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// Approval is the manager-owned part of an expense. It is written only by
// repository.ExpenseRepository.ApplyTransition, never by content updates.
type Approval struct {
	Status          ApprovalStatus `json:"status" gorm:"column:approval_status;type:varchar(20);not null;default:'Pending';index"`
	ApprovedBy      *string        `json:"approved_by,omitempty" gorm:"column:approved_by;size:255"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty" gorm:"column:approved_at"`
	RejectionReason *string        `json:"rejection_reason,omitempty" gorm:"column:rejection_reason;size:500"`
}

// Transition describes one approval state change applied to a batch of expenses.
type Transition struct {
	Status ApprovalStatus
	Actor  string
	At     time.Time
	// Reason is recorded on rejection. Approvals clear it.
	Reason *string
}

// Columns returns the approval column values the transition writes.
func (t Transition) Columns() map[string]interface{} {
	reason := t.Reason
	if t.Status != ApprovalStatusRejected {
		reason = nil
	}
	return map[string]interface{}{
		"approval_status":  t.Status,
		"approved_by":      t.Actor,
		"approved_at":      t.At,
		"rejection_reason": reason,
	}
}
