package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/model"
	"github.com/nicobh12/inventory-app/internal/repository"
)

var cien = decimal.NewFromInt(100)

type CompraService interface {
	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error)
}

type compraService struct {
	store       *infra.Store
	materias    repository.MateriaPrimaRepository
	proveedores repository.ProveedorRepository
}

func NewCompraService(
	store *infra.Store,
	materias repository.MateriaPrimaRepository,
	proveedores repository.ProveedorRepository,
) CompraService {
	return &compraService{store: store, materias: materias, proveedores: proveedores}
}

// ── RegistrarCompra ───────────────────────────────────────────────────────────
// precio_definitivo = unitario × cantidad × (1 − descuento/100)
// costo_promedio    = (stockAnterior × costoAnterior + precio_definitivo)
//                     ───────────────────────────────────────────────────
//                              (stockAnterior + cantidad)
// Todo en decimal: el promedio ponderado debe ser exacto.

func (s *compraService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	if req.Cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("la cantidad comprada debe ser positiva")
	}
	if req.PrecioUnitario.IsNegative() {
		return nil, errors.New("el precio unitario no puede ser negativo")
	}
	if req.DescuentoPorcentaje.IsNegative() || req.DescuentoPorcentaje.GreaterThan(cien) {
		return nil, errors.New("descuento_porcentaje debe estar entre 0 y 100")
	}
	if req.NumeroFactura == "" {
		return nil, errors.New("numero_factura es obligatorio")
	}
	if _, err := s.proveedores.FindByID(ctx, req.ProveedorID); err != nil {
		return nil, fmt.Errorf("proveedor %d no encontrado", req.ProveedorID)
	}

	precioTotal := req.PrecioUnitario.Mul(req.Cantidad)
	precioDefinitivo := precioTotal.Mul(cien.Sub(req.DescuentoPorcentaje)).Div(cien)

	var resp dto.CompraResponse
	txErr := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		mp, err := s.materias.FindByIDTx(tx, req.MateriaPrimaID)
		if err != nil {
			return fmt.Errorf("materia prima %d no encontrada", req.MateriaPrimaID)
		}

		nuevoStock := mp.StockActual.Add(req.Cantidad)
		nuevoCosto := mp.StockActual.Mul(mp.CostoPromedio).
			Add(precioDefinitivo).
			Div(nuevoStock)

		compra := model.CompraMateriaPrima{
			MateriaPrimaID:      mp.ID,
			ProveedorID:         req.ProveedorID,
			Cantidad:            req.Cantidad,
			NumeroFactura:       req.NumeroFactura,
			PrecioUnitario:      req.PrecioUnitario,
			PrecioTotal:         precioTotal,
			DescuentoPorcentaje: req.DescuentoPorcentaje,
			PrecioDefinitivo:    precioDefinitivo,
			FechaCompra:         req.FechaCompra,
			Notas:               req.Notas,
		}
		if err := s.materias.CreateCompraTx(tx, &compra); err != nil {
			return err
		}
		if err := s.materias.ActualizarCostoTx(tx, mp.ID, nuevoStock, nuevoCosto); err != nil {
			return err
		}

		resp = dto.CompraResponse{
			CompraID:         compra.ID,
			PrecioDefinitivo: precioDefinitivo,
			StockActual:      nuevoStock,
			CostoPromedio:    nuevoCosto,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Int64("compra_id", resp.CompraID).Int64("materia_prima_id", req.MateriaPrimaID).
		Str("costo_promedio", resp.CostoPromedio.String()).Msg("compra registrada")
	return &resp, nil
}
