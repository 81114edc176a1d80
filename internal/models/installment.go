package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lunaalencar/juridico-api/internal/billing"
)

// Installment represents one scheduled partial payment (parcela) of a
// contract's balance. All installments of a contract are created together
// when the schedule is generated; the only transition afterwards is
// pending to paid, exactly once.
type Installment struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	ContractID        uint             `gorm:"not null;uniqueIndex:idx_parcelas_contract_seq,priority:1" json:"contract_id"`
	SequenceNumber    int              `gorm:"not null;uniqueIndex:idx_parcelas_contract_seq,priority:2" json:"sequence_number"`
	Amount            decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate           time.Time        `gorm:"type:date;not null;index" json:"due_date"`
	Status            string           `gorm:"default:pending;not null;index" json:"status"`
	PaidAt            *time.Time       `gorm:"type:date" json:"paid_at"`
	PaidAmount        *decimal.Decimal `gorm:"type:decimal(12,2)" json:"paid_amount"`
	PaymentMethod     *string          `json:"payment_method"`
	CollectedByUserID *uint            `gorm:"index" json:"collected_by_user_id"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`

	// Associations
	Contract Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
}

// TableName specifies the table name for Installment
func (Installment) TableName() string {
	return "parcelas"
}

// Installment status constants
const (
	InstallmentStatusPending = "pending"
	InstallmentStatusPaid    = "paid"
)

// IsPaid returns true once the installment has been collected
func (i *Installment) IsPaid() bool {
	return i.Status == InstallmentStatusPaid || i.PaidAt != nil
}

// OverdueDays returns whole days past due as of the given date, 0 when on
// time or already paid.
func (i *Installment) OverdueDays(asOf time.Time) int {
	if i.IsPaid() {
		return 0
	}
	days := billing.OverdueDays(i.DueDate, asOf)
	if days < 0 {
		return 0
	}
	return days
}

// InstallmentResponse is the JSON response format for installments
type InstallmentResponse struct {
	ID             uint             `json:"id"`
	ContractID     uint             `json:"contract_id"`
	SequenceNumber int              `json:"sequence_number"`
	Amount         decimal.Decimal  `json:"amount"`
	DueDate        time.Time        `json:"due_date"`
	Status         string           `json:"status"`
	PaidAt         *time.Time       `json:"paid_at"`
	PaidAmount     *decimal.Decimal `json:"paid_amount"`
	PaymentMethod  *string          `json:"payment_method"`

	// Display context
	CaseName   string `json:"case_name,omitempty"`
	ClientName string `json:"client_name,omitempty"`
}

// ToResponse converts Installment to InstallmentResponse
func (i *Installment) ToResponse() InstallmentResponse {
	resp := InstallmentResponse{
		ID:             i.ID,
		ContractID:     i.ContractID,
		SequenceNumber: i.SequenceNumber,
		Amount:         i.Amount,
		DueDate:        i.DueDate,
		Status:         i.Status,
		PaidAt:         i.PaidAt,
		PaidAmount:     i.PaidAmount,
		PaymentMethod:  i.PaymentMethod,
	}

	if i.Contract.ID != 0 && i.Contract.Case.ID != 0 {
		resp.CaseName = i.Contract.Case.DisplayName()
		resp.ClientName = i.Contract.Case.Client.Name
	}

	return resp
}
