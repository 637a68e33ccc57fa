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
	"github.com/nicobh12/inventory-app/internal/ledgererr"
	"github.com/nicobh12/inventory-app/internal/model"
	"github.com/nicobh12/inventory-app/internal/repository"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	EliminarVenta(ctx context.Context, ventaID int64) error
	ObtenerVenta(ctx context.Context, ventaID int64) (*dto.VentaResponse, error)
}

type ventaService struct {
	store     *infra.Store
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	clientes  repository.ClienteRepository
	pagos     repository.PagoRepository
	config    repository.ConfigRepository
}

func NewVentaService(
	store *infra.Store,
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	pagos repository.PagoRepository,
	config repository.ConfigRepository,
) VentaService {
	return &ventaService{
		store:     store,
		ventas:    ventas,
		productos: productos,
		clientes:  clientes,
		pagos:     pagos,
		config:    config,
	}
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Transacción completa:
//   1. Resolver líneas: presentación activa, precio dentro de rango, unidades
//   2. BEGIN TX: crear venta+detalles, descontar stock por cada línea,
//      aumentar la exposición de crédito del cliente
//   3. COMMIT — cualquier línea con stock insuficiente aborta toda la venta

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Lineas) == 0 {
		return nil, errors.New("la venta no tiene líneas")
	}
	if req.NumeroFactura == "" {
		return nil, errors.New("numero_factura es obligatorio")
	}

	cliente, err := s.clientes.FindByID(ctx, req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d no encontrado", req.ClienteID)
	}
	if !cliente.Activo {
		return nil, fmt.Errorf("cliente %s está inactivo", cliente.NombreComercial)
	}

	rangoHabilitado := s.config.GetDefault(ctx, model.ConfigRangoPreciosHabilitado, "1") == "1"

	// Resolver líneas fuera de la transacción: presentaciones, unidades y
	// validación de precios. El chequeo de stock ocurre dentro de la TX.
	type lineaResuelta struct {
		productoID       int64
		presentacionID   int64
		cantidadMoq      decimal.Decimal
		cantidadUnidades int64
		precioUnitario   decimal.Decimal
		subtotal         decimal.Decimal
	}

	var resueltas []lineaResuelta
	total := decimal.Zero

	for _, linea := range req.Lineas {
		if linea.CantidadMoq.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("cantidad inválida para producto %d", linea.ProductoID)
		}

		producto, err := s.productos.FindByID(ctx, linea.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto %d no encontrado", linea.ProductoID)
		}
		if !producto.Activo {
			return nil, fmt.Errorf("producto %s está inactivo y no puede venderse", producto.Nombre)
		}

		pres, err := s.productos.FindPresentacionByID(ctx, linea.PresentacionID)
		if err != nil || pres.ProductoID != producto.ID {
			return nil, fmt.Errorf("presentación %d no pertenece al producto %d", linea.PresentacionID, linea.ProductoID)
		}

		if rangoHabilitado {
			if linea.PrecioUnitario.LessThan(producto.PrecioMin) || linea.PrecioUnitario.GreaterThan(producto.PrecioMax) {
				return nil, fmt.Errorf("precio %s fuera del rango [%s, %s] del producto %s",
					linea.PrecioUnitario, producto.PrecioMin, producto.PrecioMax, producto.Nombre)
			}
		}

		unidades := linea.CantidadMoq.Mul(decimal.NewFromInt(pres.UnidadesPorMoq))
		if !unidades.IsInteger() {
			return nil, fmt.Errorf("cantidad %s de la presentación %s no produce unidades enteras",
				linea.CantidadMoq, pres.Nombre)
		}

		subtotal := linea.PrecioUnitario.Mul(linea.CantidadMoq)
		total = total.Add(subtotal)
		resueltas = append(resueltas, lineaResuelta{
			productoID:       producto.ID,
			presentacionID:   pres.ID,
			cantidadMoq:      linea.CantidadMoq,
			cantidadUnidades: unidades.IntPart(),
			precioUnitario:   linea.PrecioUnitario,
			subtotal:         subtotal,
		})
	}

	var venta model.Venta
	txErr := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		// Descontar stock línea por línea; el chequeo y el descuento ocurren
		// dentro de la misma TX, donde SQLite serializa a los escritores.
		for _, r := range resueltas {
			stock, err := s.productos.FindStockTx(tx, r.productoID, r.presentacionID)
			disponible := int64(0)
			if err == nil {
				disponible = stock.Cantidad
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if disponible < r.cantidadUnidades {
				return &ledgererr.InsufficientStockError{
					ProductoID:     r.productoID,
					PresentacionID: r.presentacionID,
					Disponible:     disponible,
					Solicitado:     r.cantidadUnidades,
				}
			}
			if err := s.productos.AjustarStockTx(tx, r.productoID, r.presentacionID, -r.cantidadUnidades); err != nil {
				return err
			}
		}

		venta = model.Venta{
			ClienteID:      req.ClienteID,
			NumeroFactura:  req.NumeroFactura,
			FechaVenta:     req.FechaVenta,
			Total:          total,
			SaldoPendiente: total,
			Estado:         model.VentaPendiente,
			Notas:          req.Notas,
		}
		for _, r := range resueltas {
			venta.Detalles = append(venta.Detalles, model.VentaDetalle{
				ProductoID:       r.productoID,
				PresentacionID:   r.presentacionID,
				CantidadUnidades: r.cantidadUnidades,
				CantidadMoq:      r.cantidadMoq,
				PrecioUnitario:   r.precioUnitario,
				Subtotal:         r.subtotal,
			})
		}
		if err := s.ventas.CreateTx(tx, &venta); err != nil {
			return err
		}

		// La venta completa queda como exposición de crédito del cliente
		// hasta que pagos y abonos la reduzcan.
		return s.clientes.AjustarSaldoCreditoTx(tx, req.ClienteID, total)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Int64("venta_id", venta.ID).Str("factura", venta.NumeroFactura).
		Str("total", total.String()).Msg("venta registrada")
	return ventaToResponse(&venta), nil
}

// ── EliminarVenta ─────────────────────────────────────────────────────────────
// El CASCADE del esquema elimina detalles, pagos y abonos_detalle, pero no
// deshace sus efectos; las actualizaciones compensatorias corren primero,
// dentro de la misma transacción que el DELETE.

func (s *ventaService) EliminarVenta(ctx context.Context, ventaID int64) error {
	txErr := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		// La venta se relee dentro de la TX: un pago que entre entre una
		// lectura externa y el DELETE se cascadearía sin compensar su bolsillo.
		venta, err := s.ventas.FindByIDTx(tx, ventaID)
		if err != nil {
			return fmt.Errorf("venta %d no encontrada", ventaID)
		}

		// Restaurar stock de cada línea.
		for _, d := range venta.Detalles {
			if err := s.productos.AjustarStockTx(tx, d.ProductoID, d.PresentacionID, d.CantidadUnidades); err != nil {
				return err
			}
		}

		// Revertir los créditos de bolsillo de pagos y abonos.
		for _, p := range venta.Pagos {
			if err := s.pagos.AjustarBolsilloTx(tx, p.MetodoPagoID, p.Monto.Neg()); err != nil {
				return err
			}
		}
		for _, a := range venta.Abonos {
			if err := s.pagos.AjustarBolsilloTx(tx, a.MetodoPagoID, a.Monto.Neg()); err != nil {
				return err
			}
		}

		// La exposición restante del cliente es el saldo aún pendiente.
		if venta.SaldoPendiente.IsPositive() {
			if err := s.clientes.AjustarSaldoCreditoTx(tx, venta.ClienteID, venta.SaldoPendiente.Neg()); err != nil {
				return err
			}
		}

		return s.ventas.DeleteTx(tx, ventaID)
	})
	if txErr != nil {
		return txErr
	}

	log.Info().Int64("venta_id", ventaID).Msg("venta eliminada con compensación")
	return nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, ventaID int64) (*dto.VentaResponse, error) {
	venta, err := s.ventas.FindByID(ctx, ventaID)
	if err != nil {
		return nil, fmt.Errorf("venta %d no encontrada", ventaID)
	}
	return ventaToResponse(venta), nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	lineas := make([]dto.LineaVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		lineas = append(lineas, dto.LineaVentaResponse{
			ProductoID:       d.ProductoID,
			PresentacionID:   d.PresentacionID,
			CantidadMoq:      d.CantidadMoq,
			CantidadUnidades: d.CantidadUnidades,
			PrecioUnitario:   d.PrecioUnitario,
			Subtotal:         d.Subtotal,
		})
	}
	return &dto.VentaResponse{
		ID:             v.ID,
		ClienteID:      v.ClienteID,
		NumeroFactura:  v.NumeroFactura,
		FechaVenta:     v.FechaVenta,
		Total:          v.Total,
		SaldoPendiente: v.SaldoPendiente,
		Estado:         v.Estado,
		Lineas:         lineas,
	}
}
