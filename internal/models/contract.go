package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract represents a signed fee agreement (contrato de honorários) for a
// case. Total, down payment and count are fixed once the schedule has been
// generated; there is no edit or cancel path.
type Contract struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	CaseID           uint            `gorm:"not null;index" json:"case_id"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	DownPayment      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"down_payment"`
	InstallmentCount int             `gorm:"not null" json:"installment_count"`
	BillingMode      string          `gorm:"not null;default:fixed_schedule" json:"billing_mode"`
	FirstDueDate     time.Time       `gorm:"type:date;not null" json:"first_due_date"`
	CreatedByUserID  *uint           `gorm:"index" json:"created_by_user_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Associations
	Case         LegalCase     `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	CreatedBy    *User         `gorm:"foreignKey:CreatedByUserID" json:"created_by,omitempty"`
	Installments []Installment `gorm:"foreignKey:ContractID" json:"installments,omitempty"`
}

// TableName specifies the table name for Contract
func (Contract) TableName() string {
	return "contratos"
}

// Billing mode constants
const (
	BillingModeFixedSchedule       = "fixed_schedule"
	BillingModeRecurringPercentage = "recurring_percentage"
)

// Balance is the amount left to schedule after the down payment.
func (c *Contract) Balance() decimal.Decimal {
	return c.TotalAmount.Sub(c.DownPayment)
}

// PendingTotal sums the scheduled amounts still unpaid.
func (c *Contract) PendingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range c.Installments {
		if !inst.IsPaid() {
			total = total.Add(inst.Amount)
		}
	}
	return total
}

// ContractResponse is the JSON response format for contracts
type ContractResponse struct {
	ID               uint                  `json:"id"`
	CaseID           uint                  `json:"case_id"`
	CaseName         string                `json:"case_name,omitempty"`
	ClientName       string                `json:"client_name,omitempty"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	DownPayment      decimal.Decimal       `json:"down_payment"`
	Balance          decimal.Decimal       `json:"balance"`
	InstallmentCount int                   `json:"installment_count"`
	BillingMode      string                `json:"billing_mode"`
	FirstDueDate     time.Time             `json:"first_due_date"`
	PendingTotal     decimal.Decimal       `json:"pending_total"`
	CreatedBy        string                `json:"created_by,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	Installments     []InstallmentResponse `json:"installments,omitempty"`
}

// ToResponse converts Contract to ContractResponse
func (c *Contract) ToResponse() ContractResponse {
	resp := ContractResponse{
		ID:               c.ID,
		CaseID:           c.CaseID,
		TotalAmount:      c.TotalAmount,
		DownPayment:      c.DownPayment,
		Balance:          c.Balance(),
		InstallmentCount: c.InstallmentCount,
		BillingMode:      c.BillingMode,
		FirstDueDate:     c.FirstDueDate,
		PendingTotal:     c.PendingTotal(),
		CreatedAt:        c.CreatedAt,
	}

	if c.Case.ID != 0 {
		resp.CaseName = c.Case.DisplayName()
		resp.ClientName = c.Case.Client.Name
	}
	if c.CreatedBy != nil {
		resp.CreatedBy = c.CreatedBy.FullName
	}

	for _, inst := range c.Installments {
		resp.Installments = append(resp.Installments, inst.ToResponse())
	}

	return resp
}
