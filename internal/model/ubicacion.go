package model

// Departamento y Municipio forman el catálogo de ubicaciones.
type Departamento struct {
	ID     int64  `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;not null"`
}

func (Departamento) TableName() string { return "departamentos" }

// Municipio pertenece a un departamento; el par (nombre, departamento) es único.
type Municipio struct {
	ID             int64  `gorm:"primaryKey"`
	Nombre         string `gorm:"not null;uniqueIndex:idx_municipio_departamento"`
	DepartamentoID int64  `gorm:"not null;uniqueIndex:idx_municipio_departamento"`

	Departamento *Departamento `gorm:"foreignKey:DepartamentoID"`
}

func (Municipio) TableName() string { return "municipios" }
