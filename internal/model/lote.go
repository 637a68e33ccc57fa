package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoteProduccion produce CantidadProducida unidades de un (producto,
// presentación) en una fecha, consumiendo materia prima según sus detalles.
// El registro del lote descuenta atómicamente cada materia consumida y
// acredita el stock de producto terminado; si algún consumo dejara stock
// negativo, el lote completo falla.
type LoteProduccion struct {
	ID                      int64            `gorm:"primaryKey"`
	CodigoLote              string           `gorm:"uniqueIndex;not null"`
	FechaProduccion         time.Time        `gorm:"type:date;not null"`
	FechaRegistro           time.Time        `gorm:"autoCreateTime"`
	ProductoID              int64            `gorm:"not null"`
	PresentacionID          int64            `gorm:"not null"`
	CantidadProducida       int64            `gorm:"not null"`
	AzucarUtilizada         *decimal.Decimal `gorm:"type:decimal(15,4)"`
	AguaUtilizada           *decimal.Decimal `gorm:"type:decimal(15,4)"`
	TiempoProduccionMinutos *int64
	UsoColorante            bool             `gorm:"not null;default:false"`
	RendimientoEsperado     *decimal.Decimal `gorm:"type:decimal(5,2)"`
	RendimientoReal         *decimal.Decimal `gorm:"type:decimal(5,2)"`
	ImagenPath              *string
	Notas                   *string

	Producto     *Producto              `gorm:"foreignKey:ProductoID"`
	Presentacion *PresentacionComercial `gorm:"foreignKey:PresentacionID"`
	Detalles     []ProduccionDetalle    `gorm:"foreignKey:LoteID"`
	Analisis     []AnalisisMuestra      `gorm:"foreignKey:LoteID"`
}

func (LoteProduccion) TableName() string { return "lotes_produccion" }

// ProduccionDetalle es un consumo de materia prima dentro de un lote.
type ProduccionDetalle struct {
	ID                int64           `gorm:"primaryKey"`
	LoteID            int64           `gorm:"not null"`
	MateriaPrimaID    int64           `gorm:"not null"`
	CantidadUtilizada decimal.Decimal `gorm:"type:decimal(15,4);not null"`

	MateriaPrima *MateriaPrima `gorm:"foreignKey:MateriaPrimaID"`
}

func (ProduccionDetalle) TableName() string { return "produccion_detalle" }

// AnalisisMuestra adjunta atributos de calidad a un lote. Puramente
// descriptivo: no participa en ninguna regla de consistencia.
type AnalisisMuestra struct {
	ID            int64      `gorm:"primaryKey"`
	LoteID        int64      `gorm:"not null"`
	FechaAnalisis *time.Time `gorm:"type:date"`
	Color         *string
	Textura       *string
	Sabor         *string
	Ph            *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Brix          *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Humedad       *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Densidad      *decimal.Decimal `gorm:"type:decimal(5,4)"`
	Viscosidad    *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Observaciones *string
}

func (AnalisisMuestra) TableName() string { return "analisis_muestras" }
