package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/ledgererr"
	"github.com/nicobh12/inventory-app/internal/model"
	"github.com/nicobh12/inventory-app/internal/repository"
)

type ProduccionService interface {
	RegistrarLote(ctx context.Context, req dto.RegistrarLoteRequest) (*dto.LoteResponse, error)
	RegistrarAnalisis(ctx context.Context, req dto.RegistrarAnalisisRequest) error
}

type produccionService struct {
	store     *infra.Store
	lotes     repository.LoteRepository
	productos repository.ProductoRepository
	materias  repository.MateriaPrimaRepository
}

func NewProduccionService(
	store *infra.Store,
	lotes repository.LoteRepository,
	productos repository.ProductoRepository,
	materias repository.MateriaPrimaRepository,
) ProduccionService {
	return &produccionService{store: store, lotes: lotes, productos: productos, materias: materias}
}

// ── RegistrarLote ─────────────────────────────────────────────────────────────
// Atómico: descuenta cada materia prima consumida y acredita el stock de
// producto terminado. Política estricta: un consumo que dejaría stock
// negativo aborta el lote completo.

func (s *produccionService) RegistrarLote(ctx context.Context, req dto.RegistrarLoteRequest) (*dto.LoteResponse, error) {
	if req.CantidadProducida <= 0 {
		return nil, errors.New("cantidad_producida debe ser positiva")
	}
	if len(req.Consumos) == 0 {
		return nil, errors.New("el lote no declara consumos de materia prima")
	}

	producto, err := s.productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto %d no encontrado", req.ProductoID)
	}
	pres, err := s.productos.FindPresentacionByID(ctx, req.PresentacionID)
	if err != nil || pres.ProductoID != producto.ID {
		return nil, fmt.Errorf("presentación %d no pertenece al producto %d", req.PresentacionID, req.ProductoID)
	}

	codigo := req.CodigoLote
	if codigo == "" {
		codigo = generarCodigoLote(req)
	}

	var lote model.LoteProduccion
	txErr := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		for _, c := range req.Consumos {
			if c.Cantidad.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("consumo inválido de materia prima %d", c.MateriaPrimaID)
			}
			mp, err := s.materias.FindByIDTx(tx, c.MateriaPrimaID)
			if err != nil {
				return fmt.Errorf("materia prima %d no encontrada", c.MateriaPrimaID)
			}
			if mp.StockActual.LessThan(c.Cantidad) {
				return &ledgererr.InsufficientRawMaterialError{
					MateriaPrimaID: mp.ID,
					Disponible:     mp.StockActual,
					Requerido:      c.Cantidad,
				}
			}
			if err := s.materias.AjustarStockTx(tx, mp.ID, c.Cantidad.Neg()); err != nil {
				return err
			}
		}

		lote = model.LoteProduccion{
			CodigoLote:              codigo,
			FechaProduccion:         req.FechaProduccion,
			ProductoID:              req.ProductoID,
			PresentacionID:          req.PresentacionID,
			CantidadProducida:       req.CantidadProducida,
			AzucarUtilizada:         req.AzucarUtilizada,
			AguaUtilizada:           req.AguaUtilizada,
			TiempoProduccionMinutos: req.TiempoProduccionMinutos,
			UsoColorante:            req.UsoColorante,
			RendimientoEsperado:     req.RendimientoEsperado,
			RendimientoReal:         req.RendimientoReal,
			Notas:                   req.Notas,
		}
		for _, c := range req.Consumos {
			lote.Detalles = append(lote.Detalles, model.ProduccionDetalle{
				MateriaPrimaID:    c.MateriaPrimaID,
				CantidadUtilizada: c.Cantidad,
			})
		}
		if err := s.lotes.CreateTx(tx, &lote); err != nil {
			return err
		}

		return s.productos.UpsertStockTx(tx, req.ProductoID, req.PresentacionID, req.CantidadProducida)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Int64("lote_id", lote.ID).Str("codigo", codigo).
		Int64("producido", req.CantidadProducida).Msg("lote de producción registrado")
	return &dto.LoteResponse{
		LoteID:            lote.ID,
		CodigoLote:        codigo,
		ProductoID:        req.ProductoID,
		PresentacionID:    req.PresentacionID,
		CantidadProducida: req.CantidadProducida,
	}, nil
}

// generarCodigoLote produce un código único fecha + fragmento aleatorio
// cuando el llamador no lo provee.
func generarCodigoLote(req dto.RegistrarLoteRequest) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("L%s-%s", req.FechaProduccion.Format("20060102"), frag)
}

// ── RegistrarAnalisis ─────────────────────────────────────────────────────────
// Puramente descriptivo: no toca stock ni saldos.

func (s *produccionService) RegistrarAnalisis(ctx context.Context, req dto.RegistrarAnalisisRequest) error {
	if _, err := s.lotes.FindByID(ctx, req.LoteID); err != nil {
		return fmt.Errorf("lote %d no encontrado", req.LoteID)
	}
	analisis := model.AnalisisMuestra{
		LoteID:        req.LoteID,
		FechaAnalisis: req.FechaAnalisis,
		Color:         req.Color,
		Textura:       req.Textura,
		Sabor:         req.Sabor,
		Ph:            req.Ph,
		Brix:          req.Brix,
		Humedad:       req.Humedad,
		Densidad:      req.Densidad,
		Viscosidad:    req.Viscosidad,
		Observaciones: req.Observaciones,
	}
	return s.lotes.CreateAnalisis(ctx, &analisis)
}
