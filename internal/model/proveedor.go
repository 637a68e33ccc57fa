package model

import "time"

// Tipos de proveedor permitidos por el CHECK de la tabla.
const (
	ProveedorMateriaPrima  = "Materia Prima"
	ProveedorInsumos       = "Insumos"
	ProveedorServicios     = "Servicios"
	ProveedorActivos       = "Activos"
	ProveedorNoClasificado = "No Clasificado"
)

type Proveedor struct {
	ID              int64  `gorm:"primaryKey"`
	NombreComercial string `gorm:"not null"`
	Tipo            string
	Identificacion  *string
	Departamento    *string
	Municipio       *string
	Direccion       *string
	TelefonoFijo    *string
	TelefonoCelular *string
	Correo          *string
	Activo          bool      `gorm:"not null;default:true"`
	FechaRegistro   time.Time `gorm:"autoCreateTime"`
}

func (Proveedor) TableName() string { return "proveedores" }
