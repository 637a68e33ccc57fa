package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegistrarCompraRequest struct {
	MateriaPrimaID      int64           `json:"materia_prima_id"`
	ProveedorID         int64           `json:"proveedor_id"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	NumeroFactura       string          `json:"numero_factura"`
	PrecioUnitario      decimal.Decimal `json:"precio_unitario"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
	FechaCompra         time.Time       `json:"fecha_compra"`
	Notas               *string         `json:"notas,omitempty"`
}

type CompraResponse struct {
	CompraID         int64           `json:"compra_id"`
	PrecioDefinitivo decimal.Decimal `json:"precio_definitivo"`
	StockActual      decimal.Decimal `json:"stock_actual"`
	CostoPromedio    decimal.Decimal `json:"costo_promedio"`
}
