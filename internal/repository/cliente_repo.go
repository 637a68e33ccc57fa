package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/model"
)

// ClienteRepository define el acceso a datos de clientes. Los servicios
// dependen de esta interfaz, no de la implementación GORM.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id int64) (*model.Cliente, error)
	List(ctx context.Context, soloActivos bool) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id int64) error

	// Usados dentro de transacciones — el llamador pasa la tx viva.
	FindByIDTx(tx *gorm.DB, id int64) (*model.Cliente, error)
	AjustarSaldoCreditoTx(tx *gorm.DB, id int64, delta decimal.Decimal) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id int64) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, soloActivos bool) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Order("nombre_comercial ASC")
	if soloActivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).
		Update("activo", false).Error
}

func (r *clienteRepo) FindByIDTx(tx *gorm.DB, id int64) (*model.Cliente, error) {
	var c model.Cliente
	err := tx.First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) AjustarSaldoCreditoTx(tx *gorm.DB, id int64, delta decimal.Decimal) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).
		Update("saldo_credito", gorm.Expr("saldo_credito + ?", delta)).Error
}
