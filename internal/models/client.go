package models

import (
	"time"
)

// Client represents a client of the office. Client records are managed by the
// intake screens; billing only reads them for display.
type Client struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;index" json:"name"`
	CPF           string    `gorm:"column:cpf" json:"cpf"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Status        string    `gorm:"default:Ativo;index" json:"status"`
	ArchiveReason *string   `gorm:"type:text" json:"archive_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clientes"
}

// Client status constants
const (
	ClientStatusActive   = "Ativo"
	ClientStatusArchived = "Arquivado"
)
