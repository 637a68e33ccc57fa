package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AplicarPagoRequest struct {
	VentaID      int64           `json:"venta_id"`
	MetodoPagoID int64           `json:"metodo_pago_id"`
	Monto        decimal.Decimal `json:"monto"`
}

type PagoResponse struct {
	PagoID         int64           `json:"pago_id"`
	VentaID        int64           `json:"venta_id"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Estado         string          `json:"estado"`
}

// DetalleAbonoRequest asigna una porción del abono a una factura abierta.
type DetalleAbonoRequest struct {
	VentaID      int64           `json:"venta_id"`
	MetodoPagoID int64           `json:"metodo_pago_id"`
	Monto        decimal.Decimal `json:"monto"`
}

type RegistrarAbonoRequest struct {
	ClienteID  int64                 `json:"cliente_id"`
	FechaAbono time.Time             `json:"fecha_abono"`
	MontoTotal decimal.Decimal       `json:"monto_total"`
	Detalles   []DetalleAbonoRequest `json:"detalles"`
	Notas      *string               `json:"notas,omitempty"`
}

type AbonoResponse struct {
	AbonoID   int64           `json:"abono_id"`
	ClienteID int64           `json:"cliente_id"`
	Aplicado  decimal.Decimal `json:"aplicado"`
	Ventas    []PagoResponse  `json:"ventas"`
}
