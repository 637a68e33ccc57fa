package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nicobh12/inventory-app/internal/model"
)

// ProductoRepository cubre productos, presentaciones y su stock por par
// (producto, presentación).
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id int64) (*model.Producto, error)
	FindPresentacionByID(ctx context.Context, id int64) (*model.PresentacionComercial, error)
	List(ctx context.Context, soloActivos bool) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id int64) error

	FindStock(ctx context.Context, productoID, presentacionID int64) (*model.StockProducto, error)

	// Usados dentro de transacciones — el llamador pasa la tx viva.
	FindStockTx(tx *gorm.DB, productoID, presentacionID int64) (*model.StockProducto, error)
	AjustarStockTx(tx *gorm.DB, productoID, presentacionID, delta int64) error
	// UpsertStockTx crea la fila de stock si no existe y suma delta; respeta
	// el UNIQUE(producto_id, presentacion_id).
	UpsertStockTx(tx *gorm.DB, productoID, presentacionID, delta int64) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id int64) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Presentaciones").First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindPresentacionByID(ctx context.Context, id int64) (*model.PresentacionComercial, error) {
	var pres model.PresentacionComercial
	err := r.db.WithContext(ctx).First(&pres, id).Error
	return &pres, err
}

func (r *productoRepo) List(ctx context.Context, soloActivos bool) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Preload("Presentaciones").Order("nombre ASC")
	if soloActivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).
		Update("activo", false).Error
}

func (r *productoRepo) FindStock(ctx context.Context, productoID, presentacionID int64) (*model.StockProducto, error) {
	return findStock(r.db.WithContext(ctx), productoID, presentacionID)
}

func (r *productoRepo) FindStockTx(tx *gorm.DB, productoID, presentacionID int64) (*model.StockProducto, error) {
	return findStock(tx, productoID, presentacionID)
}

func findStock(db *gorm.DB, productoID, presentacionID int64) (*model.StockProducto, error) {
	var s model.StockProducto
	err := db.Where("producto_id = ? AND presentacion_id = ?", productoID, presentacionID).
		First(&s).Error
	return &s, err
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, productoID, presentacionID, delta int64) error {
	res := tx.Model(&model.StockProducto{}).
		Where("producto_id = ? AND presentacion_id = ?", productoID, presentacionID).
		Update("cantidad", gorm.Expr("cantidad + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) UpsertStockTx(tx *gorm.DB, productoID, presentacionID, delta int64) error {
	s := model.StockProducto{
		ProductoID:     productoID,
		PresentacionID: presentacionID,
		Cantidad:       delta,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "producto_id"}, {Name: "presentacion_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cantidad": gorm.Expr("cantidad + ?", delta),
		}),
	}).Create(&s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.AjustarStockTx(tx, productoID, presentacionID, delta)
	}
	return err
}
