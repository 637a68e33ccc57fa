package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompraMateriaPrima registra una adquisición de materia prima a un proveedor.
// PrecioDefinitivo = PrecioTotal × (1 − DescuentoPorcentaje/100); es el valor
// que entra al promedio ponderado del costo.
type CompraMateriaPrima struct {
	ID                  int64           `gorm:"primaryKey"`
	MateriaPrimaID      int64           `gorm:"not null"`
	ProveedorID         int64           `gorm:"not null"`
	Cantidad            decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	NumeroFactura       string          `gorm:"not null"`
	PrecioUnitario      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrecioTotal         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DescuentoPorcentaje decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PrecioDefinitivo    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FechaCompra         time.Time       `gorm:"type:date;not null"`
	FechaRegistro       time.Time       `gorm:"autoCreateTime"`
	Notas               *string

	MateriaPrima *MateriaPrima `gorm:"foreignKey:MateriaPrimaID"`
	Proveedor    *Proveedor    `gorm:"foreignKey:ProveedorID"`
}

func (CompraMateriaPrima) TableName() string { return "compras_materia_prima" }
