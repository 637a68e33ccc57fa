package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente es un comprador con saldo de crédito acumulado (fiado).
// SaldoCredito refleja la exposición total: suma de saldos pendientes de sus
// ventas abiertas, mantenida por las operaciones del libro mayor.
type Cliente struct {
	ID              int64  `gorm:"primaryKey"`
	Departamento    string `gorm:"not null"`
	Municipio       string `gorm:"not null"`
	NombreComercial string `gorm:"not null"`
	Identificacion  *string
	Direccion       *string
	TelefonoFijo    *string
	TelefonoCelular *string
	Correo          *string
	SaldoCredito    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Activo          bool            `gorm:"not null;default:true"`
	FechaRegistro   time.Time       `gorm:"autoCreateTime"`
	Notas           *string
}

func (Cliente) TableName() string { return "clientes" }
