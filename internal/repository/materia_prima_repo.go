package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/model"
)

type MateriaPrimaRepository interface {
	Create(ctx context.Context, mp *model.MateriaPrima) error
	FindByID(ctx context.Context, id int64) (*model.MateriaPrima, error)
	List(ctx context.Context, soloActivas bool) ([]model.MateriaPrima, error)
	Update(ctx context.Context, mp *model.MateriaPrima) error

	// Usados dentro de transacciones — el llamador pasa la tx viva.
	FindByIDTx(tx *gorm.DB, id int64) (*model.MateriaPrima, error)
	AjustarStockTx(tx *gorm.DB, id int64, delta decimal.Decimal) error
	ActualizarCostoTx(tx *gorm.DB, id int64, stock, costoPromedio decimal.Decimal) error
	CreateCompraTx(tx *gorm.DB, c *model.CompraMateriaPrima) error
}

type materiaPrimaRepo struct{ db *gorm.DB }

func NewMateriaPrimaRepository(db *gorm.DB) MateriaPrimaRepository {
	return &materiaPrimaRepo{db: db}
}

func (r *materiaPrimaRepo) Create(ctx context.Context, mp *model.MateriaPrima) error {
	return r.db.WithContext(ctx).Create(mp).Error
}

func (r *materiaPrimaRepo) FindByID(ctx context.Context, id int64) (*model.MateriaPrima, error) {
	var mp model.MateriaPrima
	err := r.db.WithContext(ctx).First(&mp, id).Error
	return &mp, err
}

func (r *materiaPrimaRepo) List(ctx context.Context, soloActivas bool) ([]model.MateriaPrima, error) {
	var materias []model.MateriaPrima
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if soloActivas {
		q = q.Where("activo = ?", true)
	}
	err := q.Find(&materias).Error
	return materias, err
}

func (r *materiaPrimaRepo) Update(ctx context.Context, mp *model.MateriaPrima) error {
	return r.db.WithContext(ctx).Save(mp).Error
}

func (r *materiaPrimaRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.MateriaPrima, error) {
	var mp model.MateriaPrima
	err := tx.First(&mp, id).Error
	return &mp, err
}

func (r *materiaPrimaRepo) AjustarStockTx(tx *gorm.DB, id int64, delta decimal.Decimal) error {
	return tx.Model(&model.MateriaPrima{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("stock_actual + ?", delta)).Error
}

func (r *materiaPrimaRepo) ActualizarCostoTx(tx *gorm.DB, id int64, stock, costoPromedio decimal.Decimal) error {
	return tx.Model(&model.MateriaPrima{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stock_actual":   stock,
		"costo_promedio": costoPromedio,
	}).Error
}

func (r *materiaPrimaRepo) CreateCompraTx(tx *gorm.DB, c *model.CompraMateriaPrima) error {
	return tx.Create(c).Error
}
