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

type PagoService interface {
	AplicarPago(ctx context.Context, req dto.AplicarPagoRequest) (*dto.PagoResponse, error)
	// AnularPago revierte un pago como operación compensatoria; es la única
	// vía para que una venta PAGADA vuelva a tener saldo.
	AnularPago(ctx context.Context, pagoID int64) error
	RegistrarAbono(ctx context.Context, req dto.RegistrarAbonoRequest) (*dto.AbonoResponse, error)
}

type pagoService struct {
	store    *infra.Store
	ventas   repository.VentaRepository
	clientes repository.ClienteRepository
	pagos    repository.PagoRepository
}

func NewPagoService(
	store *infra.Store,
	ventas repository.VentaRepository,
	clientes repository.ClienteRepository,
	pagos repository.PagoRepository,
) PagoService {
	return &pagoService{store: store, ventas: ventas, clientes: clientes, pagos: pagos}
}

// ── AplicarPago ───────────────────────────────────────────────────────────────

func (s *pagoService) AplicarPago(ctx context.Context, req dto.AplicarPagoRequest) (*dto.PagoResponse, error) {
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("el monto del pago debe ser positivo")
	}
	if _, err := s.pagos.FindMetodoByID(ctx, req.MetodoPagoID); err != nil {
		return nil, fmt.Errorf("método de pago %d no encontrado", req.MetodoPagoID)
	}

	var resp dto.PagoResponse
	txErr := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		venta, err := s.ventas.FindByIDTx(tx, req.VentaID)
		if err != nil {
			return fmt.Errorf("venta %d no encontrada", req.VentaID)
		}

		// El saldo se relee dentro de la TX: los pagos concurrentes sobre la
		// misma venta se serializan aquí y el sobrante se rechaza sin mutar.
		if req.Monto.GreaterThan(venta.SaldoPendiente) {
			return &ledgererr.OverpaymentError{
				VentaID:        venta.ID,
				SaldoPendiente: venta.SaldoPendiente,
				Monto:          req.Monto,
			}
		}

		nuevoSaldo := venta.SaldoPendiente.Sub(req.Monto)
		estado := model.EstadoPorSaldo(nuevoSaldo, venta.Total)

		pago := model.PagoVenta{
			VentaID:      venta.ID,
			MetodoPagoID: req.MetodoPagoID,
			Monto:        req.Monto,
		}
		if err := s.pagos.CreatePagoTx(tx, &pago); err != nil {
			return err
		}
		if err := s.ventas.ActualizarSaldoTx(tx, venta.ID, nuevoSaldo, estado); err != nil {
			return err
		}
		if err := s.pagos.AjustarBolsilloTx(tx, req.MetodoPagoID, req.Monto); err != nil {
			return err
		}
		if err := s.clientes.AjustarSaldoCreditoTx(tx, venta.ClienteID, req.Monto.Neg()); err != nil {
			return err
		}

		resp = dto.PagoResponse{
			PagoID:         pago.ID,
			VentaID:        venta.ID,
			SaldoPendiente: nuevoSaldo,
			Estado:         estado,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Int64("venta_id", resp.VentaID).Str("saldo", resp.SaldoPendiente.String()).
		Str("estado", resp.Estado).Msg("pago aplicado")
	return &resp, nil
}

// ── AnularPago ────────────────────────────────────────────────────────────────

func (s *pagoService) AnularPago(ctx context.Context, pagoID int64) error {
	return s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		// El pago se relee dentro de la TX: dos anulaciones concurrentes del
		// mismo pago se serializan aquí y la segunda falla sin tocar nada.
		pago, err := s.pagos.FindPagoByIDTx(tx, pagoID)
		if err != nil {
			return fmt.Errorf("pago %d no encontrado", pagoID)
		}

		venta, err := s.ventas.FindByIDTx(tx, pago.VentaID)
		if err != nil {
			return err
		}

		nuevoSaldo := venta.SaldoPendiente.Add(pago.Monto)
		estado := model.EstadoPorSaldo(nuevoSaldo, venta.Total)

		if err := s.pagos.DeletePagoTx(tx, pago.ID); err != nil {
			return err
		}
		if err := s.ventas.ActualizarSaldoTx(tx, venta.ID, nuevoSaldo, estado); err != nil {
			return err
		}
		if err := s.pagos.AjustarBolsilloTx(tx, pago.MetodoPagoID, pago.Monto.Neg()); err != nil {
			return err
		}
		return s.clientes.AjustarSaldoCreditoTx(tx, venta.ClienteID, pago.Monto)
	})
}

// ── RegistrarAbono ────────────────────────────────────────────────────────────
// Un abono reparte un monto global entre facturas abiertas del cliente. La
// suma de los detalles debe igualar el total declarado, y cada detalle se
// aplica con la misma semántica que un pago.

func (s *pagoService) RegistrarAbono(ctx context.Context, req dto.RegistrarAbonoRequest) (*dto.AbonoResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, errors.New("el abono no tiene detalles")
	}

	suma := decimal.Zero
	for _, d := range req.Detalles {
		if d.Monto.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("monto inválido en el detalle de la venta %d", d.VentaID)
		}
		suma = suma.Add(d.Monto)
	}
	if !suma.Equal(req.MontoTotal) {
		return nil, &ledgererr.AllocationMismatchError{Esperado: req.MontoTotal, Recibido: suma}
	}

	cliente, err := s.clientes.FindByID(ctx, req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d no encontrado", req.ClienteID)
	}

	var resp dto.AbonoResponse
	txErr := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		abono := model.AbonoCredito{
			ClienteID:  cliente.ID,
			FechaAbono: req.FechaAbono,
			MontoTotal: req.MontoTotal,
			Notas:      req.Notas,
		}
		if err := s.pagos.CreateAbonoTx(tx, &abono); err != nil {
			return err
		}

		ventasResp := make([]dto.PagoResponse, 0, len(req.Detalles))
		for _, d := range req.Detalles {
			venta, err := s.ventas.FindByIDTx(tx, d.VentaID)
			if err != nil {
				return fmt.Errorf("venta %d no encontrada", d.VentaID)
			}
			if venta.ClienteID != cliente.ID {
				return fmt.Errorf("la venta %d no pertenece al cliente %d", d.VentaID, cliente.ID)
			}
			if d.Monto.GreaterThan(venta.SaldoPendiente) {
				return &ledgererr.OverpaymentError{
					VentaID:        venta.ID,
					SaldoPendiente: venta.SaldoPendiente,
					Monto:          d.Monto,
				}
			}

			detalle := model.AbonoDetalle{
				AbonoID:      abono.ID,
				VentaID:      venta.ID,
				MetodoPagoID: d.MetodoPagoID,
				Monto:        d.Monto,
			}
			if err := s.pagos.CreateAbonoDetalleTx(tx, &detalle); err != nil {
				return err
			}

			nuevoSaldo := venta.SaldoPendiente.Sub(d.Monto)
			estado := model.EstadoPorSaldo(nuevoSaldo, venta.Total)
			if err := s.ventas.ActualizarSaldoTx(tx, venta.ID, nuevoSaldo, estado); err != nil {
				return err
			}
			if err := s.pagos.AjustarBolsilloTx(tx, d.MetodoPagoID, d.Monto); err != nil {
				return err
			}
			ventasResp = append(ventasResp, dto.PagoResponse{
				PagoID:         detalle.ID,
				VentaID:        venta.ID,
				SaldoPendiente: nuevoSaldo,
				Estado:         estado,
			})
		}

		if err := s.clientes.AjustarSaldoCreditoTx(tx, cliente.ID, req.MontoTotal.Neg()); err != nil {
			return err
		}

		resp = dto.AbonoResponse{
			AbonoID:   abono.ID,
			ClienteID: cliente.ID,
			Aplicado:  req.MontoTotal,
			Ventas:    ventasResp,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Int64("abono_id", resp.AbonoID).Int64("cliente_id", resp.ClienteID).
		Str("monto", req.MontoTotal.String()).Msg("abono registrado")
	return &resp, nil
}
