package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. PENDIENTE → PARCIAL → PAGADA; PAGADA solo se revierte
// mediante la anulación compensatoria de un pago, nunca mutando el saldo.
const (
	VentaPendiente = "PENDIENTE"
	VentaParcial   = "PARCIAL"
	VentaPagada    = "PAGADA"
)

// Venta mantiene el invariante
//
//	SaldoPendiente = Total − Σ(pagos) − Σ(abonos aplicados)
//
// y su Estado se recalcula cada vez que alguno de los lados cambia.
type Venta struct {
	ID             int64           `gorm:"primaryKey"`
	ClienteID      int64           `gorm:"not null"`
	NumeroFactura  string          `gorm:"not null"`
	FechaVenta     time.Time       `gorm:"type:date;not null"`
	FechaRegistro  time.Time       `gorm:"autoCreateTime"`
	Total          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SaldoPendiente decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Estado         string          `gorm:"not null;default:'PENDIENTE'"`
	Notas          *string

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []VentaDetalle `gorm:"foreignKey:VentaID"`
	Pagos    []PagoVenta    `gorm:"foreignKey:VentaID"`
	Abonos   []AbonoDetalle `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// EstadoPorSaldo devuelve el estado derivado del saldo frente al total.
func EstadoPorSaldo(saldo, total decimal.Decimal) string {
	switch {
	case saldo.IsZero():
		return VentaPagada
	case saldo.Equal(total):
		return VentaPendiente
	default:
		return VentaParcial
	}
}

// VentaDetalle es una línea de venta. CantidadUnidades = CantidadMoq ×
// unidades_por_moq de la presentación; es lo que se descuenta del stock.
type VentaDetalle struct {
	ID               int64           `gorm:"primaryKey"`
	VentaID          int64           `gorm:"not null"`
	ProductoID       int64           `gorm:"not null"`
	PresentacionID   int64           `gorm:"not null"`
	CantidadUnidades int64           `gorm:"not null"`
	CantidadMoq      decimal.Decimal `gorm:"column:cantidad_moq;type:decimal(10,4);not null"`
	PrecioUnitario   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Producto     *Producto              `gorm:"foreignKey:ProductoID"`
	Presentacion *PresentacionComercial `gorm:"foreignKey:PresentacionID"`
}

func (VentaDetalle) TableName() string { return "ventas_detalle" }
