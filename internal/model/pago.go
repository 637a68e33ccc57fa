package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Códigos fijos de los métodos de pago sembrados en la inicialización.
const (
	MetodoEfectivo   = "EFECTIVO"
	MetodoNequi      = "NEQUI"
	MetodoCajaSocial = "CAJA_SOCIAL"
	MetodoCredito    = "CREDITO"
)

type MetodoPago struct {
	ID     int64  `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;not null"`
	Codigo string `gorm:"uniqueIndex;not null"`
}

func (MetodoPago) TableName() string { return "metodos_pago" }

// PagoVenta abona Monto al saldo pendiente de una venta y acredita el
// bolsillo del método de pago.
type PagoVenta struct {
	ID           int64           `gorm:"primaryKey"`
	VentaID      int64           `gorm:"not null"`
	MetodoPagoID int64           `gorm:"not null"`
	Monto        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FechaPago    time.Time       `gorm:"autoCreateTime"`

	MetodoPago *MetodoPago `gorm:"foreignKey:MetodoPagoID"`
}

func (PagoVenta) TableName() string { return "pagos_venta" }

// Bolsillo lleva el saldo acumulado de un método de pago. Invariante:
// SaldoActual = Σ(pagos ruteados al método) + Σ(abonos ruteados al método)
// menos los retiros registrados. Un bolsillo por método (UNIQUE).
type Bolsillo struct {
	ID           int64           `gorm:"primaryKey"`
	MetodoPagoID int64           `gorm:"uniqueIndex;not null"`
	SaldoActual  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	MetodoPago *MetodoPago `gorm:"foreignKey:MetodoPagoID"`
}

func (Bolsillo) TableName() string { return "bolsillos" }
