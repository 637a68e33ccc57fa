package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/model"
	"github.com/nicobh12/inventory-app/internal/repository"
)

// ReporteService es la fachada de consulta: solo lectura, nunca muta. Las
// agregaciones que cruzan tablas corren dentro de una transacción para no
// observar una operación del libro mayor aplicada a medias.
type ReporteService interface {
	SaldoCliente(ctx context.Context, clienteID int64) (*dto.SaldoClienteResponse, error)
	MateriaPrimaBajoMinimo(ctx context.Context) ([]dto.MateriaPrimaBajaResponse, error)
	SaldosBolsillos(ctx context.Context) ([]dto.SaldoBolsilloResponse, error)
	ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type reporteService struct {
	store  *infra.Store
	ventas repository.VentaRepository
}

func NewReporteService(store *infra.Store, ventas repository.VentaRepository) ReporteService {
	return &reporteService{store: store, ventas: ventas}
}

func (s *reporteService) SaldoCliente(ctx context.Context, clienteID int64) (*dto.SaldoClienteResponse, error) {
	var resp dto.SaldoClienteResponse
	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		row := struct {
			Saldo    decimal.Decimal
			Abiertas int64
		}{}
		err := tx.Model(&model.Venta{}).
			Select("COALESCE(SUM(saldo_pendiente), 0) AS saldo, COUNT(CASE WHEN saldo_pendiente > 0 THEN 1 END) AS abiertas").
			Where("cliente_id = ?", clienteID).
			Scan(&row).Error
		if err != nil {
			return err
		}
		resp = dto.SaldoClienteResponse{
			ClienteID:      clienteID,
			SaldoPendiente: row.Saldo,
			VentasAbiertas: row.Abiertas,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *reporteService) MateriaPrimaBajoMinimo(ctx context.Context) ([]dto.MateriaPrimaBajaResponse, error) {
	var out []dto.MateriaPrimaBajaResponse
	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		var materias []model.MateriaPrima
		if err := tx.
			Where("activo = ? AND stock_actual < stock_minimo", true).
			Order("nombre ASC").
			Find(&materias).Error; err != nil {
			return err
		}
		out = make([]dto.MateriaPrimaBajaResponse, 0, len(materias))
		for _, mp := range materias {
			out = append(out, dto.MateriaPrimaBajaResponse{
				MateriaPrimaID: mp.ID,
				Nombre:         mp.Nombre,
				UnidadMedida:   mp.UnidadMedida,
				StockActual:    mp.StockActual,
				StockMinimo:    mp.StockMinimo,
			})
		}
		return nil
	})
	return out, err
}

func (s *reporteService) SaldosBolsillos(ctx context.Context) ([]dto.SaldoBolsilloResponse, error) {
	var out []dto.SaldoBolsilloResponse
	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		var bolsillos []model.Bolsillo
		if err := tx.Preload("MetodoPago").Order("metodo_pago_id ASC").
			Find(&bolsillos).Error; err != nil {
			return err
		}
		out = make([]dto.SaldoBolsilloResponse, 0, len(bolsillos))
		for _, b := range bolsillos {
			r := dto.SaldoBolsilloResponse{
				MetodoPagoID: b.MetodoPagoID,
				SaldoActual:  b.SaldoActual,
			}
			if b.MetodoPago != nil {
				r.Codigo = b.MetodoPago.Codigo
				r.Nombre = b.MetodoPago.Nombre
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

// ListarVentas pagina con valores por defecto al estilo del resto de listados.
func (s *reporteService) ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	// Total y página dentro de la misma transacción: un escritor concurrente
	// no puede colarse entre el COUNT y el SELECT paginado.
	var ventas []model.Venta
	var total int64
	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		ventas, total, err = s.ventas.ListTx(tx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
