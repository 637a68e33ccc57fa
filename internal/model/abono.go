package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AbonoCredito es un pago global de un cliente repartido entre una o más de
// sus facturas abiertas. La suma de los detalles debe igualar MontoTotal.
type AbonoCredito struct {
	ID         int64           `gorm:"primaryKey"`
	ClienteID  int64           `gorm:"not null"`
	FechaAbono time.Time       `gorm:"type:date;not null"`
	MontoTotal decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notas      *string

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []AbonoDetalle `gorm:"foreignKey:AbonoID"`
}

func (AbonoCredito) TableName() string { return "abonos_credito" }

// AbonoDetalle aplica una porción del abono a una venta concreta, con la misma
// semántica que un PagoVenta: reduce el saldo pendiente y acredita el bolsillo.
type AbonoDetalle struct {
	ID           int64           `gorm:"primaryKey"`
	AbonoID      int64           `gorm:"not null"`
	VentaID      int64           `gorm:"not null"`
	MetodoPagoID int64           `gorm:"not null"`
	Monto        decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	MetodoPago *MetodoPago `gorm:"foreignKey:MetodoPagoID"`
}

func (AbonoDetalle) TableName() string { return "abonos_detalle" }
