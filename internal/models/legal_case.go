package models

import (
	"time"
)

// LegalCase represents a client's legal matter (processo). Cases are managed
// elsewhere; contracts hold a non-owning reference to one.
type LegalCase struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	BenefitType string    `gorm:"not null" json:"benefit_type"`
	Sphere      string    `json:"sphere"`
	Status      string    `gorm:"default:Em Análise" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// TableName specifies the table name for LegalCase
func (LegalCase) TableName() string {
	return "processos"
}

// DisplayName is the label billing uses in ledger descriptions and the
// receivables queue: client name plus benefit type.
func (p *LegalCase) DisplayName() string {
	if p.Client.Name == "" {
		return p.BenefitType
	}
	return p.Client.Name + " - " + p.BenefitType
}
