package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/model"
)

type LoteRepository interface {
	FindByID(ctx context.Context, id int64) (*model.LoteProduccion, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.LoteProduccion, error)
	List(ctx context.Context) ([]model.LoteProduccion, error)
	CreateAnalisis(ctx context.Context, a *model.AnalisisMuestra) error

	// Usado dentro de transacciones — el llamador pasa la tx viva.
	CreateTx(tx *gorm.DB, l *model.LoteProduccion) error
}

type loteRepo struct{ db *gorm.DB }

func NewLoteRepository(db *gorm.DB) LoteRepository { return &loteRepo{db: db} }

func (r *loteRepo) FindByID(ctx context.Context, id int64) (*model.LoteProduccion, error) {
	var l model.LoteProduccion
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("Analisis").
		First(&l, id).Error
	return &l, err
}

func (r *loteRepo) FindByCodigo(ctx context.Context, codigo string) (*model.LoteProduccion, error) {
	var l model.LoteProduccion
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Where("codigo_lote = ?", codigo).First(&l).Error
	return &l, err
}

func (r *loteRepo) List(ctx context.Context) ([]model.LoteProduccion, error) {
	var lotes []model.LoteProduccion
	err := r.db.WithContext(ctx).
		Order("fecha_produccion DESC, id DESC").
		Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) CreateAnalisis(ctx context.Context, a *model.AnalisisMuestra) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *loteRepo) CreateTx(tx *gorm.DB, l *model.LoteProduccion) error {
	return tx.Create(l).Error
}
