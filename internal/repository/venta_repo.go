package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/model"
)

type VentaRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Venta, error)

	// Usados dentro de transacciones — el llamador pasa la tx viva.
	ListTx(tx *gorm.DB, filter dto.VentaFilter) ([]model.Venta, int64, error)
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByIDTx(tx *gorm.DB, id int64) (*model.Venta, error)
	ActualizarSaldoTx(tx *gorm.DB, id int64, saldo decimal.Decimal, estado string) error
	DeleteTx(tx *gorm.DB, id int64) error
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) FindByID(ctx context.Context, id int64) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("Pagos").Preload("Abonos").
		First(&v, id).Error
	return &v, err
}

// ListTx corre el Count y el Find sobre la misma transacción, de modo que el
// total y la página salen del mismo snapshot.
func (r *ventaRepo) ListTx(tx *gorm.DB, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := tx.Model(&model.Venta{})
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Desde != nil {
		q = q.Where("fecha_venta >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("fecha_venta <= ?", *filter.Hasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Detalles").
		Order("fecha_venta DESC, id DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Venta, error) {
	var v model.Venta
	err := tx.Preload("Detalles").Preload("Pagos").Preload("Abonos").
		First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) ActualizarSaldoTx(tx *gorm.DB, id int64, saldo decimal.Decimal, estado string) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Updates(map[string]interface{}{
		"saldo_pendiente": saldo,
		"estado":          estado,
	}).Error
}

// DeleteTx elimina la venta; el ON DELETE CASCADE del esquema arrastra
// detalles, pagos y abonos_detalle. Las compensaciones corren antes, en la
// misma transacción.
func (r *ventaRepo) DeleteTx(tx *gorm.DB, id int64) error {
	return tx.Delete(&model.Venta{}, id).Error
}
