package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/model"
)

// PagoRepository cubre métodos de pago, bolsillos, pagos y abonos.
type PagoRepository interface {
	FindMetodoByID(ctx context.Context, id int64) (*model.MetodoPago, error)
	FindMetodoByCodigo(ctx context.Context, codigo string) (*model.MetodoPago, error)
	ListMetodos(ctx context.Context) ([]model.MetodoPago, error)

	// Usados dentro de transacciones — el llamador pasa la tx viva.
	FindPagoByIDTx(tx *gorm.DB, id int64) (*model.PagoVenta, error)
	CreatePagoTx(tx *gorm.DB, p *model.PagoVenta) error
	DeletePagoTx(tx *gorm.DB, id int64) error
	CreateAbonoTx(tx *gorm.DB, a *model.AbonoCredito) error
	CreateAbonoDetalleTx(tx *gorm.DB, d *model.AbonoDetalle) error
	AjustarBolsilloTx(tx *gorm.DB, metodoPagoID int64, delta decimal.Decimal) error
	FindBolsilloTx(tx *gorm.DB, metodoPagoID int64) (*model.Bolsillo, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) FindMetodoByID(ctx context.Context, id int64) (*model.MetodoPago, error) {
	var m model.MetodoPago
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *pagoRepo) FindMetodoByCodigo(ctx context.Context, codigo string) (*model.MetodoPago, error) {
	var m model.MetodoPago
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&m).Error
	return &m, err
}

func (r *pagoRepo) ListMetodos(ctx context.Context) ([]model.MetodoPago, error) {
	var metodos []model.MetodoPago
	err := r.db.WithContext(ctx).Order("id ASC").Find(&metodos).Error
	return metodos, err
}

func (r *pagoRepo) CreatePagoTx(tx *gorm.DB, p *model.PagoVenta) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) FindPagoByIDTx(tx *gorm.DB, id int64) (*model.PagoVenta, error) {
	var pago model.PagoVenta
	if err := tx.First(&pago, id).Error; err != nil {
		return nil, err
	}
	return &pago, nil
}

// DeletePagoTx borra el pago y falla si ya no existe: dos anulaciones
// concurrentes del mismo pago no pueden aplicar la reversión dos veces.
func (r *pagoRepo) DeletePagoTx(tx *gorm.DB, id int64) error {
	res := tx.Delete(&model.PagoVenta{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pagoRepo) CreateAbonoTx(tx *gorm.DB, a *model.AbonoCredito) error {
	return tx.Create(a).Error
}

func (r *pagoRepo) CreateAbonoDetalleTx(tx *gorm.DB, d *model.AbonoDetalle) error {
	return tx.Create(d).Error
}

func (r *pagoRepo) AjustarBolsilloTx(tx *gorm.DB, metodoPagoID int64, delta decimal.Decimal) error {
	res := tx.Model(&model.Bolsillo{}).Where("metodo_pago_id = ?", metodoPagoID).
		Update("saldo_actual", gorm.Expr("saldo_actual + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pagoRepo) FindBolsilloTx(tx *gorm.DB, metodoPagoID int64) (*model.Bolsillo, error) {
	var b model.Bolsillo
	err := tx.Where("metodo_pago_id = ?", metodoPagoID).First(&b).Error
	return &b, err
}
