package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un bien terminado con un rango de precio [min, max] dentro del
// cual deben caer los precios de venta cuando el rango está habilitado.
type Producto struct {
	ID            int64  `gorm:"primaryKey"`
	Nombre        string `gorm:"not null"`
	ImagenPath    *string
	PrecioMin     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrecioMax     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Activo        bool            `gorm:"not null;default:true"`
	FechaCreacion time.Time       `gorm:"autoCreateTime"`
	Notas         *string

	Presentaciones []PresentacionComercial `gorm:"foreignKey:ProductoID"`
}

func (Producto) TableName() string { return "productos" }

// PresentacionComercial es una configuración de empaque del producto
// (ej. "Cartón de 24 unidades"). EsMoq marca la mínima unidad de venta;
// las cantidades vendidas se expresan como múltiplos de ella.
type PresentacionComercial struct {
	ID             int64  `gorm:"primaryKey"`
	ProductoID     int64  `gorm:"not null"`
	Nombre         string `gorm:"not null"`
	EsMoq          bool   `gorm:"column:es_moq;not null;default:false"`
	UnidadesPorMoq int64  `gorm:"column:unidades_por_moq;not null;default:1"`
	Activo         bool   `gorm:"not null;default:true"`
}

func (PresentacionComercial) TableName() string { return "presentaciones_comerciales" }

// StockProducto lleva la cantidad en unidades por par (producto, presentación).
// La tabla impone UNIQUE(producto_id, presentacion_id): una fila por par.
type StockProducto struct {
	ID             int64 `gorm:"primaryKey"`
	ProductoID     int64 `gorm:"not null"`
	PresentacionID int64 `gorm:"not null"`
	Cantidad       int64 `gorm:"not null;default:0"`
	Ubicacion      *string
}

func (StockProducto) TableName() string { return "stock_productos" }
