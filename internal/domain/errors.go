package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los mensajes viajan tal cual
// en la respuesta HTTP, por eso están en inglés.
var (
	ErrProductNotFound     = errors.New("Product not found")
	ErrTransactionNotFound = errors.New("Transaction not found")
	ErrOrderNotFound       = errors.New("Order not found")

	ErrProductIDMissing     = errors.New("Product ID missing")
	ErrTransactionIDMissing = errors.New("Transaction ID missing")
	ErrOrderIDMissing       = errors.New("Order ID missing")

	// El tipo inválido se reporta por el mismo canal 404 que los "not found".
	// Comportamiento heredado del diseño original; no introducir un código nuevo.
	ErrTransactionTypeMissing = errors.New("Transaction Type missing")

	// Retiro u orden por encima del stock disponible. Se mapea a 409.
	ErrInsufficientStock = errors.New("Insufficient stock")
)

// IsNotFound indica si el error se reporta por el canal 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrProductIDMissing) ||
		errors.Is(err, ErrTransactionIDMissing) ||
		errors.Is(err, ErrOrderIDMissing) ||
		errors.Is(err, ErrTransactionTypeMissing)
}

// ValidationError agrupa mensajes de validación campo a campo (canal 400).
type ValidationError struct {
	Fields []string
}

// NewValidationError construye el error con mensajes "campo: detalle".
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + strings.Join(e.Fields, ", ")
}
