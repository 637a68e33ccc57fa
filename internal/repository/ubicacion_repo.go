package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/model"
)

// UbicacionRepository mantiene el catálogo de departamentos y municipios.
type UbicacionRepository interface {
	CrearDepartamento(ctx context.Context, d *model.Departamento) error
	CrearMunicipio(ctx context.Context, m *model.Municipio) error
	ListDepartamentos(ctx context.Context) ([]model.Departamento, error)
	ListMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error)
}

type ubicacionRepo struct{ db *gorm.DB }

func NewUbicacionRepository(db *gorm.DB) UbicacionRepository { return &ubicacionRepo{db: db} }

func (r *ubicacionRepo) CrearDepartamento(ctx context.Context, d *model.Departamento) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ubicacionRepo) CrearMunicipio(ctx context.Context, m *model.Municipio) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ubicacionRepo) ListDepartamentos(ctx context.Context) ([]model.Departamento, error) {
	var deps []model.Departamento
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&deps).Error
	return deps, err
}

func (r *ubicacionRepo) ListMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error) {
	var muns []model.Municipio
	err := r.db.WithContext(ctx).
		Where("departamento_id = ?", departamentoID).
		Order("nombre ASC").Find(&muns).Error
	return muns, err
}
