package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User        UserRepository
	Case        CaseRepository
	Contract    ContractRepository
	Installment InstallmentRepository
	Ledger      LedgerRepository

	db *gorm.DB
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Case:        NewCaseRepository(db),
		Contract:    NewContractRepository(db),
		Installment: NewInstallmentRepository(db),
		Ledger:      NewLedgerRepository(db),
		db:          db,
	}
}

// Atomic runs fn inside a single database transaction, passing repositories
// bound to that transaction. Used where two writes must commit or fail as a
// unit (installment collection).
func (r *Repositories) Atomic(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// ListQuery carries pagination, search and filter parameters for list endpoints
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

// Offset returns the row offset for the current page
func (q *ListQuery) Offset() int {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}
	return (q.Page - 1) * q.PerPage
}
