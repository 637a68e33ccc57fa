package dto

import "github.com/shopspring/decimal"

type CrearClienteRequest struct {
	Departamento    string  `json:"departamento"`
	Municipio       string  `json:"municipio"`
	NombreComercial string  `json:"nombre_comercial"`
	Identificacion  *string `json:"identificacion,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
	TelefonoFijo    *string `json:"telefono_fijo,omitempty"`
	TelefonoCelular *string `json:"telefono_celular,omitempty"`
	Correo          *string `json:"correo,omitempty"`
	Notas           *string `json:"notas,omitempty"`
}

type CrearProveedorRequest struct {
	NombreComercial string  `json:"nombre_comercial"`
	Tipo            string  `json:"tipo"`
	Identificacion  *string `json:"identificacion,omitempty"`
	Departamento    *string `json:"departamento,omitempty"`
	Municipio       *string `json:"municipio,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
	TelefonoFijo    *string `json:"telefono_fijo,omitempty"`
	TelefonoCelular *string `json:"telefono_celular,omitempty"`
	Correo          *string `json:"correo,omitempty"`
}

type CrearPresentacionRequest struct {
	Nombre         string `json:"nombre"`
	EsMoq          bool   `json:"es_moq"`
	UnidadesPorMoq int64  `json:"unidades_por_moq"`
}

type CrearProductoRequest struct {
	Nombre         string                     `json:"nombre"`
	ImagenPath     *string                    `json:"imagen_path,omitempty"`
	PrecioMin      decimal.Decimal            `json:"precio_min"`
	PrecioMax      decimal.Decimal            `json:"precio_max"`
	Presentaciones []CrearPresentacionRequest `json:"presentaciones"`
	Notas          *string                    `json:"notas,omitempty"`
}

type CrearMateriaPrimaRequest struct {
	Nombre       string          `json:"nombre"`
	Tipo         string          `json:"tipo"`
	UnidadMedida string          `json:"unidad_medida"`
	ProveedorID  *int64          `json:"proveedor_id,omitempty"`
	StockMinimo  decimal.Decimal `json:"stock_minimo"`
	ImagenPath   *string         `json:"imagen_path,omitempty"`
}

// AjustarStockRequest corrige manualmente el stock de un par
// (producto, presentación); Delta puede ser negativo.
type AjustarStockRequest struct {
	ProductoID     int64  `json:"producto_id"`
	PresentacionID int64  `json:"presentacion_id"`
	Delta          int64  `json:"delta"`
	Motivo         string `json:"motivo"`
}
