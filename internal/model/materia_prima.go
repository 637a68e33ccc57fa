package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de materia prima permitidos por el CHECK de la tabla.
const (
	MateriaAzucar       = "Azúcar"
	MateriaAcidoCitrico = "Ácido Cítrico"
	MateriaSaborizante  = "Saborizante"
	MateriaEnvase       = "Envase"
	MateriaEtiqueta     = "Etiqueta"
	MateriaCinta        = "Cinta"
	MateriaTapa         = "Tapa"
	MateriaOtro         = "Otro"
)

// MateriaPrima es un insumo de producción. CostoPromedio es un promedio móvil
// ponderado por cantidad, actualizado en cada compra.
type MateriaPrima struct {
	ID            int64  `gorm:"primaryKey"`
	Nombre        string `gorm:"not null"`
	Tipo          string
	UnidadMedida  string `gorm:"not null"`
	ProveedorID   *int64
	StockActual   decimal.Decimal `gorm:"type:decimal(15,4);not null;default:0"`
	StockMinimo   decimal.Decimal `gorm:"type:decimal(15,4);not null;default:0"`
	CostoPromedio decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ImagenPath    *string
	Activo        bool      `gorm:"not null;default:true"`
	FechaCreacion time.Time `gorm:"autoCreateTime"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (MateriaPrima) TableName() string { return "materia_prima" }
