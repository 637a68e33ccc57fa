package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaVentaRequest es una línea de una venta a registrar. CantidadMoq se
// expresa en múltiplos de la presentación (1.5, 2.0, …); PrecioUnitario es el
// precio por MOQ.
type LineaVentaRequest struct {
	ProductoID     int64           `json:"producto_id"`
	PresentacionID int64           `json:"presentacion_id"`
	CantidadMoq    decimal.Decimal `json:"cantidad_moq"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type RegistrarVentaRequest struct {
	ClienteID     int64               `json:"cliente_id"`
	NumeroFactura string              `json:"numero_factura"`
	FechaVenta    time.Time           `json:"fecha_venta"`
	Lineas        []LineaVentaRequest `json:"lineas"`
	Notas         *string             `json:"notas,omitempty"`
}

type LineaVentaResponse struct {
	ProductoID       int64           `json:"producto_id"`
	PresentacionID   int64           `json:"presentacion_id"`
	CantidadMoq      decimal.Decimal `json:"cantidad_moq"`
	CantidadUnidades int64           `json:"cantidad_unidades"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID             int64                `json:"id"`
	ClienteID      int64                `json:"cliente_id"`
	NumeroFactura  string               `json:"numero_factura"`
	FechaVenta     time.Time            `json:"fecha_venta"`
	Total          decimal.Decimal      `json:"total"`
	SaldoPendiente decimal.Decimal      `json:"saldo_pendiente"`
	Estado         string               `json:"estado"`
	Lineas         []LineaVentaResponse `json:"lineas"`
}

// VentaFilter filtra el listado de ventas por estado y rango de fechas.
type VentaFilter struct {
	Estado string     `json:"estado"` // PENDIENTE | PARCIAL | PAGADA | "" (todas)
	Desde  *time.Time `json:"desde,omitempty"`
	Hasta  *time.Time `json:"hasta,omitempty"`
	Page   int        `json:"page"`
	Limit  int        `json:"limit"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
