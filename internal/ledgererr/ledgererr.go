// Package ledgererr defines the error taxonomy of the persistence layer.
// Every failure surfaced to callers is one of the types below; raw driver
// errors never leave internal/infra.
package ledgererr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrStorageBusy indicates the bounded transaction-acquisition wait expired.
// The layer never retries on its own; the retry policy belongs to the caller.
var ErrStorageBusy = errors.New("almacenamiento ocupado: timeout esperando el lock de escritura")

// Kind classifies a StorageError.
type Kind string

const (
	KindIO     Kind = "io"
	KindDriver Kind = "driver"
)

// StorageError wraps an I/O or driver failure. Non-recoverable within the call.
type StorageError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("error de almacenamiento (%s): %s", e.Kind, e.Message)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ConstraintError is a unique / foreign-key / check breach. User-correctable.
type ConstraintError struct {
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("violación de restricción: %s", e.Message)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// InsufficientStockError aborts a sale whose line would drive finished-goods
// stock negative. No partial effect persists.
type InsufficientStockError struct {
	ProductoID     int64
	PresentacionID int64
	Disponible     int64
	Solicitado     int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %d / presentación %d: disponible %d, solicitado %d",
		e.ProductoID, e.PresentacionID, e.Disponible, e.Solicitado)
}

// InsufficientRawMaterialError aborts a production batch whose consumption
// would drive raw-material stock negative.
type InsufficientRawMaterialError struct {
	MateriaPrimaID int64
	Disponible     decimal.Decimal
	Requerido      decimal.Decimal
}

func (e *InsufficientRawMaterialError) Error() string {
	return fmt.Sprintf("materia prima %d insuficiente: disponible %s, requerido %s",
		e.MateriaPrimaID, e.Disponible, e.Requerido)
}

// OverpaymentError rejects a payment or abono allocation that exceeds the
// sale's pending balance. Nothing is written.
type OverpaymentError struct {
	VentaID        int64
	SaldoPendiente decimal.Decimal
	Monto          decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("el pago de %s excede el saldo pendiente %s de la venta %d",
		e.Monto, e.SaldoPendiente, e.VentaID)
}

// AllocationMismatchError rejects an abono whose allocations do not sum to the
// declared total. Validated before any write.
type AllocationMismatchError struct {
	Esperado decimal.Decimal
	Recibido decimal.Decimal
}

func (e *AllocationMismatchError) Error() string {
	return fmt.Sprintf("las asignaciones del abono suman %s pero el total declarado es %s",
		e.Recibido, e.Esperado)
}

// IsDomain reports whether err is one of the business-rule errors above, as
// opposed to an infrastructure failure. Infra's error translation leaves
// domain errors untouched.
func IsDomain(err error) bool {
	var (
		stock  *InsufficientStockError
		mp     *InsufficientRawMaterialError
		over   *OverpaymentError
		alloc  *AllocationMismatchError
		constr *ConstraintError
	)
	return errors.As(err, &stock) ||
		errors.As(err, &mp) ||
		errors.As(err, &over) ||
		errors.As(err, &alloc) ||
		errors.As(err, &constr)
}
