package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/ledgererr"
	"github.com/nicobh12/inventory-app/internal/repository"
)

// InventarioService cubre los ajustes manuales de stock que no provienen de
// ventas ni de producción.
type InventarioService interface {
	// AjustarStock suma Delta al par (producto, presentación); un ajuste que
	// dejaría el stock negativo falla sin mutar.
	AjustarStock(ctx context.Context, req dto.AjustarStockRequest) error
	ConsultarStock(ctx context.Context, productoID, presentacionID int64) (int64, error)
}

type inventarioService struct {
	store     *infra.Store
	productos repository.ProductoRepository
}

func NewInventarioService(store *infra.Store, productos repository.ProductoRepository) InventarioService {
	return &inventarioService{store: store, productos: productos}
}

func (s *inventarioService) AjustarStock(ctx context.Context, req dto.AjustarStockRequest) error {
	if req.Delta == 0 {
		return errors.New("el ajuste no puede ser cero")
	}
	if _, err := s.productos.FindPresentacionByID(ctx, req.PresentacionID); err != nil {
		return fmt.Errorf("presentación %d no encontrada", req.PresentacionID)
	}

	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		stock, err := s.productos.FindStockTx(tx, req.ProductoID, req.PresentacionID)
		disponible := int64(0)
		if err == nil {
			disponible = stock.Cantidad
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if disponible+req.Delta < 0 {
			return &ledgererr.InsufficientStockError{
				ProductoID:     req.ProductoID,
				PresentacionID: req.PresentacionID,
				Disponible:     disponible,
				Solicitado:     -req.Delta,
			}
		}
		return s.productos.UpsertStockTx(tx, req.ProductoID, req.PresentacionID, req.Delta)
	})
	if err != nil {
		return err
	}

	log.Info().Int64("producto_id", req.ProductoID).Int64("presentacion_id", req.PresentacionID).
		Int64("delta", req.Delta).Str("motivo", req.Motivo).Msg("stock ajustado")
	return nil
}

func (s *inventarioService) ConsultarStock(ctx context.Context, productoID, presentacionID int64) (int64, error) {
	stock, err := s.productos.FindStock(ctx, productoID, presentacionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return stock.Cantidad, nil
}
