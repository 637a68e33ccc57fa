package dto

import "github.com/shopspring/decimal"

// SaldoClienteResponse es el saldo pendiente agregado de un cliente.
type SaldoClienteResponse struct {
	ClienteID      int64           `json:"cliente_id"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	VentasAbiertas int64           `json:"ventas_abiertas"`
}

type MateriaPrimaBajaResponse struct {
	MateriaPrimaID int64           `json:"materia_prima_id"`
	Nombre         string          `json:"nombre"`
	UnidadMedida   string          `json:"unidad_medida"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
}

type SaldoBolsilloResponse struct {
	MetodoPagoID int64           `json:"metodo_pago_id"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	SaldoActual  decimal.Decimal `json:"saldo_actual"`
}

// BackupResponse describe el artefacto producido por un snapshot.
type BackupResponse struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

// EstadoAlmacenResponse es la introspección de salud del archivo de datos.
type EstadoAlmacenResponse struct {
	Path      string `json:"path"`
	Existe    bool   `json:"existe"`
	SizeBytes int64  `json:"size_bytes"`
}
