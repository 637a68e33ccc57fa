package model

// Claves de configuración sembradas en la inicialización.
const (
	ConfigEmpresaNombre          = "empresa_nombre"
	ConfigIvaPorcentaje          = "iva_porcentaje"
	ConfigRangoPreciosHabilitado = "rango_precios_habilitado"
	ConfigRutaImagenes           = "ruta_imagenes"
)

// Configuracion es el almacén clave→valor de parámetros del proceso
// (porcentaje de IVA, ruta de imágenes). Se carga al arranque y solo muta
// por acción administrativa explícita.
type Configuracion struct {
	Clave string `gorm:"primaryKey"`
	Valor *string
}

func (Configuracion) TableName() string { return "configuraciones" }
