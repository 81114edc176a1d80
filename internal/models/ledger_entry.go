package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents one append-only cash movement (lançamento de caixa).
// Entries come from installment collection, down payments or manual
// registration; they are never edited or deleted.
//
// InstallmentID carries a unique index so a collected installment can never
// produce two inflow entries, and so the reconciliation sweep can re-post a
// missing entry without risk of duplication.
type LedgerEntry struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Direction     string          `gorm:"not null;index" json:"direction"`
	Description   string          `gorm:"not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	EntryType     string          `gorm:"not null;index" json:"entry_type"`
	OperatorID    uint            `gorm:"not null;index" json:"operator_id"`
	ContractID    *uint           `gorm:"index" json:"contract_id,omitempty"`
	InstallmentID *uint           `gorm:"uniqueIndex" json:"installment_id,omitempty"`
	ReceiptPath   *string         `json:"-"`
	EntryDate     time.Time       `gorm:"not null;index;default:current_timestamp" json:"entry_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Associations
	Operator    User         `gorm:"foreignKey:OperatorID" json:"-"`
	Installment *Installment `gorm:"foreignKey:InstallmentID" json:"-"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "caixa"
}

// Direction constants (Entrada/Saída in the cash book)
const (
	DirectionInflow  = "entrada"
	DirectionOutflow = "saida"
)

// Entry type constants
const (
	EntryTypeInstallment = "parcela"      // installment collection
	EntryTypeDownPayment = "entrada_sinal" // contract down payment
	EntryTypeManual      = "manual"       // registered by hand on the cash screen
)

// Payment method constants
const (
	PaymentMethodCash    = "dinheiro"
	PaymentMethodPix     = "pix"
	PaymentMethodDeposit = "deposito"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodPix, PaymentMethodDeposit:
		return true
	}
	return false
}

// LedgerEntryResponse is the JSON response format for ledger entries
type LedgerEntryResponse struct {
	ID            uint            `json:"id"`
	Direction     string          `json:"direction"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	EntryType     string          `json:"entry_type"`
	OperatorID    uint            `json:"operator_id"`
	Operator      string          `json:"operator,omitempty"`
	ContractID    *uint           `json:"contract_id,omitempty"`
	InstallmentID *uint           `json:"installment_id,omitempty"`
	HasReceipt    bool            `json:"has_receipt"`
	EntryDate     time.Time       `json:"entry_date"`
}

// ToResponse converts LedgerEntry to LedgerEntryResponse
func (e *LedgerEntry) ToResponse() LedgerEntryResponse {
	resp := LedgerEntryResponse{
		ID:            e.ID,
		Direction:     e.Direction,
		Description:   e.Description,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		EntryType:     e.EntryType,
		OperatorID:    e.OperatorID,
		ContractID:    e.ContractID,
		InstallmentID: e.InstallmentID,
		HasReceipt:    e.ReceiptPath != nil && *e.ReceiptPath != "",
		EntryDate:     e.EntryDate,
	}
	if e.Operator.ID != 0 {
		resp.Operator = e.Operator.FullName
	}
	return resp
}
