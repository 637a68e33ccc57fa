package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoRequest es una materia prima consumida por un lote.
type ConsumoRequest struct {
	MateriaPrimaID int64           `json:"materia_prima_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
}

type RegistrarLoteRequest struct {
	CodigoLote        string           `json:"codigo_lote"` // generado si viene vacío
	FechaProduccion   time.Time        `json:"fecha_produccion"`
	ProductoID        int64            `json:"producto_id"`
	PresentacionID    int64            `json:"presentacion_id"`
	CantidadProducida int64            `json:"cantidad_producida"`
	Consumos          []ConsumoRequest `json:"consumos"`

	AzucarUtilizada         *decimal.Decimal `json:"azucar_utilizada,omitempty"`
	AguaUtilizada           *decimal.Decimal `json:"agua_utilizada,omitempty"`
	TiempoProduccionMinutos *int64           `json:"tiempo_produccion_minutos,omitempty"`
	UsoColorante            bool             `json:"uso_colorante"`
	RendimientoEsperado     *decimal.Decimal `json:"rendimiento_esperado,omitempty"`
	RendimientoReal         *decimal.Decimal `json:"rendimiento_real,omitempty"`
	Notas                   *string          `json:"notas,omitempty"`
}

type LoteResponse struct {
	LoteID            int64  `json:"lote_id"`
	CodigoLote        string `json:"codigo_lote"`
	ProductoID        int64  `json:"producto_id"`
	PresentacionID    int64  `json:"presentacion_id"`
	CantidadProducida int64  `json:"cantidad_producida"`
}

type RegistrarAnalisisRequest struct {
	LoteID        int64            `json:"lote_id"`
	FechaAnalisis *time.Time       `json:"fecha_analisis,omitempty"`
	Color         *string          `json:"color,omitempty"`
	Textura       *string          `json:"textura,omitempty"`
	Sabor         *string          `json:"sabor,omitempty"`
	Ph            *decimal.Decimal `json:"ph,omitempty"`
	Brix          *decimal.Decimal `json:"brix,omitempty"`
	Humedad       *decimal.Decimal `json:"humedad,omitempty"`
	Densidad      *decimal.Decimal `json:"densidad,omitempty"`
	Viscosidad    *decimal.Decimal `json:"viscosidad,omitempty"`
	Observaciones *string          `json:"observaciones,omitempty"`
}
