package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/model"
	"github.com/nicobh12/inventory-app/internal/repository"
	"github.com/nicobh12/inventory-app/internal/service"
)

// env arma un almacén real sobre un archivo temporal con todos los
// repositorios y servicios cableados, igual que lo haría el host.
type env struct {
	store *infra.Store

	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	productos   repository.ProductoRepository
	materias    repository.MateriaPrimaRepository
	ventasRepo  repository.VentaRepository
	pagosRepo   repository.PagoRepository
	lotes       repository.LoteRepository
	ubicaciones repository.UbicacionRepository
	config      repository.ConfigRepository

	ventas     service.VentaService
	pagos      service.PagoService
	compras    service.CompraService
	produccion service.ProduccionService
	inventario service.InventarioService
	reportes   service.ReporteService
	maestros   service.MaestrosService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store, err := infra.Open(infra.Options{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	e := &env{store: store}
	db := store.DB()
	e.clientes = repository.NewClienteRepository(db)
	e.proveedores = repository.NewProveedorRepository(db)
	e.productos = repository.NewProductoRepository(db)
	e.materias = repository.NewMateriaPrimaRepository(db)
	e.ventasRepo = repository.NewVentaRepository(db)
	e.pagosRepo = repository.NewPagoRepository(db)
	e.lotes = repository.NewLoteRepository(db)
	e.ubicaciones = repository.NewUbicacionRepository(db)
	e.config = repository.NewConfigRepository(db)

	e.ventas = service.NewVentaService(store, e.ventasRepo, e.productos, e.clientes, e.pagosRepo, e.config)
	e.pagos = service.NewPagoService(store, e.ventasRepo, e.clientes, e.pagosRepo)
	e.compras = service.NewCompraService(store, e.materias, e.proveedores)
	e.produccion = service.NewProduccionService(store, e.lotes, e.productos, e.materias)
	e.inventario = service.NewInventarioService(store, e.productos)
	e.reportes = service.NewReporteService(store, e.ventasRepo)
	e.maestros = service.NewMaestrosService(e.clientes, e.proveedores, e.productos, e.materias, e.ubicaciones, e.config)
	return e
}

func (e *env) seedCliente(t *testing.T, nombre string) *model.Cliente {
	t.Helper()
	c := &model.Cliente{
		Departamento:    "Santander",
		Municipio:       "Bucaramanga",
		NombreComercial: nombre,
		Activo:          true,
	}
	require.NoError(t, e.clientes.Create(context.Background(), c))
	return c
}

func (e *env) seedProveedor(t *testing.T, nombre string) *model.Proveedor {
	t.Helper()
	p := &model.Proveedor{
		NombreComercial: nombre,
		Tipo:            model.ProveedorMateriaPrima,
		Activo:          true,
	}
	require.NoError(t, e.proveedores.Create(context.Background(), p))
	return p
}

// seedProducto crea un producto activo con una presentación MOQ y deja el
// stock inicial indicado en unidades.
func (e *env) seedProducto(t *testing.T, nombre string, unidadesPorMoq, stock int64) *model.Producto {
	t.Helper()
	p := &model.Producto{
		Nombre:    nombre,
		PrecioMin: dec("1000"),
		PrecioMax: dec("5000"),
		Activo:    true,
		Presentaciones: []model.PresentacionComercial{
			{Nombre: "Caja", EsMoq: true, UnidadesPorMoq: unidadesPorMoq, Activo: true},
		},
	}
	require.NoError(t, e.productos.Create(context.Background(), p))
	if stock > 0 {
		require.NoError(t, e.inventario.AjustarStock(context.Background(), dto.AjustarStockRequest{
			ProductoID:     p.ID,
			PresentacionID: p.Presentaciones[0].ID,
			Delta:          stock,
			Motivo:         "carga inicial",
		}))
	}
	return p
}

func (e *env) seedMateriaPrima(t *testing.T, nombre string, stock, costo decimal.Decimal) *model.MateriaPrima {
	t.Helper()
	mp := &model.MateriaPrima{
		Nombre:        nombre,
		Tipo:          model.MateriaAzucar,
		UnidadMedida:  "kg",
		StockActual:   stock,
		CostoPromedio: costo,
		Activo:        true,
	}
	require.NoError(t, e.materias.Create(context.Background(), mp))
	return mp
}

func (e *env) metodoPago(t *testing.T, codigo string) *model.MetodoPago {
	t.Helper()
	m, err := e.pagosRepo.FindMetodoByCodigo(context.Background(), codigo)
	require.NoError(t, err)
	return m
}

// ventaSimple registra una venta de una línea y devuelve la respuesta.
func (e *env) ventaSimple(t *testing.T, clienteID int64, p *model.Producto, cantidadMoq, precio string) *dto.VentaResponse {
	t.Helper()
	resp, err := e.ventas.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ClienteID:     clienteID,
		NumeroFactura: "F-" + time.Now().Format("150405.000000"),
		FechaVenta:    fecha(2026, 8, 15),
		Lineas: []dto.LineaVentaRequest{{
			ProductoID:     p.ID,
			PresentacionID: p.Presentaciones[0].ID,
			CantidadMoq:    dec(cantidadMoq),
			PrecioUnitario: dec(precio),
		}},
	})
	require.NoError(t, err)
	return resp
}

func (e *env) saldoBolsillo(t *testing.T, metodoPagoID int64) decimal.Decimal {
	t.Helper()
	b, err := e.pagosRepo.FindBolsilloTx(e.store.DB(), metodoPagoID)
	require.NoError(t, err)
	return b.SaldoActual
}

func (e *env) saldoCliente(t *testing.T, clienteID int64) decimal.Decimal {
	t.Helper()
	c, err := e.clientes.FindByID(context.Background(), clienteID)
	require.NoError(t, err)
	return c.SaldoCredito
}

func (e *env) stockUnidades(t *testing.T, productoID, presentacionID int64) int64 {
	t.Helper()
	n, err := e.inventario.ConsultarStock(context.Background(), productoID, presentacionID)
	require.NoError(t, err)
	return n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
