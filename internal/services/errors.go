package services

import "errors"

// Common service errors
var (
	ErrNotFound           = errors.New("registro não encontrado")
	ErrAlreadyPaid        = errors.New("parcela já recebida")
	ErrValidation         = errors.New("dados inválidos")
	ErrInvalidState       = errors.New("transição de estado inválida")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInactiveAccount    = errors.New("conta inativa")
	ErrUnauthorized       = errors.New("não autorizado")
)
