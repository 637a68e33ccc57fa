package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/ledgererr"
	"github.com/nicobh12/inventory-app/internal/model"
)

func TestRegistrarVentaDescuentaStockYExposicion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Tienda La Esquina")
	// 24 unidades por MOQ, 100 unidades en stock
	producto := e.seedProducto(t, "Panela x24", 24, 100)
	pres := producto.Presentaciones[0]

	resp, err := e.ventas.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		ClienteID:     cliente.ID,
		NumeroFactura: "FV-001",
		FechaVenta:    fecha(2026, 8, 10),
		Lineas: []dto.LineaVentaRequest{{
			ProductoID:     producto.ID,
			PresentacionID: pres.ID,
			CantidadMoq:    dec("2.5"), // 2.5 × 24 = 60 unidades
			PrecioUnitario: dec("2000"),
		}},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("5000")), "total = 2.5 × 2000")
	assert.True(t, resp.SaldoPendiente.Equal(resp.Total))
	assert.Equal(t, model.VentaPendiente, resp.Estado)
	require.Len(t, resp.Lineas, 1)
	assert.Equal(t, int64(60), resp.Lineas[0].CantidadUnidades)

	assert.Equal(t, int64(40), e.stockUnidades(t, producto.ID, pres.ID))
	assert.True(t, e.saldoCliente(t, cliente.ID).Equal(dec("5000")),
		"la venta completa entra como exposición de crédito")
}

func TestRegistrarVentaStockInsuficienteNoMuta(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente A")
	producto := e.seedProducto(t, "Bocadillo", 10, 25)
	pres := producto.Presentaciones[0]

	_, err := e.ventas.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		ClienteID:     cliente.ID,
		NumeroFactura: "FV-002",
		FechaVenta:    fecha(2026, 8, 10),
		Lineas: []dto.LineaVentaRequest{{
			ProductoID:     producto.ID,
			PresentacionID: pres.ID,
			CantidadMoq:    dec("3"), // 30 unidades > 25 disponibles
			PrecioUnitario: dec("1500"),
		}},
	})

	var stockErr *ledgererr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(25), stockErr.Disponible)
	assert.Equal(t, int64(30), stockErr.Solicitado)

	// Rollback completo: ni stock, ni venta, ni saldo del cliente.
	assert.Equal(t, int64(25), e.stockUnidades(t, producto.ID, pres.ID))
	assert.True(t, e.saldoCliente(t, cliente.ID).IsZero())

	var nVentas int64
	require.NoError(t, e.store.DB().Model(&model.Venta{}).Count(&nVentas).Error)
	assert.Zero(t, nVentas)
}

func TestRegistrarVentaMultilineaAbortaCompleta(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente B")
	conStock := e.seedProducto(t, "Con Stock", 1, 100)
	sinStock := e.seedProducto(t, "Sin Stock", 1, 5)

	_, err := e.ventas.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		ClienteID:     cliente.ID,
		NumeroFactura: "FV-003",
		FechaVenta:    fecha(2026, 8, 11),
		Lineas: []dto.LineaVentaRequest{
			{
				ProductoID:     conStock.ID,
				PresentacionID: conStock.Presentaciones[0].ID,
				CantidadMoq:    dec("10"),
				PrecioUnitario: dec("1000"),
			},
			{
				ProductoID:     sinStock.ID,
				PresentacionID: sinStock.Presentaciones[0].ID,
				CantidadMoq:    dec("6"),
				PrecioUnitario: dec("1000"),
			},
		},
	})
	var stockErr *ledgererr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	// La primera línea también se revierte.
	assert.Equal(t, int64(100), e.stockUnidades(t, conStock.ID, conStock.Presentaciones[0].ID))
	assert.Equal(t, int64(5), e.stockUnidades(t, sinStock.ID, sinStock.Presentaciones[0].ID))
}

func TestRegistrarVentaPrecioFueraDeRango(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente C")
	producto := e.seedProducto(t, "Dulce", 1, 50) // rango [1000, 5000]

	req := dto.RegistrarVentaRequest{
		ClienteID:     cliente.ID,
		NumeroFactura: "FV-004",
		FechaVenta:    fecha(2026, 8, 12),
		Lineas: []dto.LineaVentaRequest{{
			ProductoID:     producto.ID,
			PresentacionID: producto.Presentaciones[0].ID,
			CantidadMoq:    dec("1"),
			PrecioUnitario: dec("500"),
		}},
	}
	_, err := e.ventas.RegistrarVenta(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuera del rango")

	// Con el chequeo deshabilitado por configuración, el mismo precio pasa.
	require.NoError(t, e.maestros.ActualizarConfiguracion(ctx, model.ConfigRangoPreciosHabilitado, "0"))
	_, err = e.ventas.RegistrarVenta(ctx, req)
	require.NoError(t, err)
}

func TestRegistrarVentaUnidadesNoEnteras(t *testing.T) {
	e := newEnv(t)

	cliente := e.seedCliente(t, "Cliente D")
	producto := e.seedProducto(t, "Caramelo x10", 10, 100)

	_, err := e.ventas.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ClienteID:     cliente.ID,
		NumeroFactura: "FV-005",
		FechaVenta:    fecha(2026, 8, 12),
		Lineas: []dto.LineaVentaRequest{{
			ProductoID:     producto.ID,
			PresentacionID: producto.Presentaciones[0].ID,
			CantidadMoq:    dec("1.55"), // 15.5 unidades
			PrecioUnitario: dec("2000"),
		}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unidades enteras")
}

func TestRegistrarVentaProductoInactivo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente E")
	producto := e.seedProducto(t, "Descontinuado", 1, 10)
	require.NoError(t, e.productos.SoftDelete(ctx, producto.ID))

	_, err := e.ventas.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		ClienteID:     cliente.ID,
		NumeroFactura: "FV-006",
		FechaVenta:    fecha(2026, 8, 13),
		Lineas: []dto.LineaVentaRequest{{
			ProductoID:     producto.ID,
			PresentacionID: producto.Presentaciones[0].ID,
			CantidadMoq:    dec("1"),
			PrecioUnitario: dec("1000"),
		}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactivo")
}

func TestEliminarVentaCompensaTodo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente F")
	producto := e.seedProducto(t, "Arequipe", 12, 120)
	pres := producto.Presentaciones[0]
	efectivo := e.metodoPago(t, model.MetodoEfectivo)

	venta := e.ventaSimple(t, cliente.ID, producto, "5", "2000") // 60 unidades, total 10000
	require.Equal(t, int64(60), e.stockUnidades(t, producto.ID, pres.ID))

	_, err := e.pagos.AplicarPago(ctx, dto.AplicarPagoRequest{
		VentaID:      venta.ID,
		MetodoPagoID: efectivo.ID,
		Monto:        dec("4000"),
	})
	require.NoError(t, err)
	require.True(t, e.saldoBolsillo(t, efectivo.ID).Equal(dec("4000")))
	require.True(t, e.saldoCliente(t, cliente.ID).Equal(dec("6000")))

	require.NoError(t, e.ventas.EliminarVenta(ctx, venta.ID))

	// Stock restaurado, bolsillo revertido, exposición en cero.
	assert.Equal(t, int64(120), e.stockUnidades(t, producto.ID, pres.ID))
	assert.True(t, e.saldoBolsillo(t, efectivo.ID).IsZero())
	assert.True(t, e.saldoCliente(t, cliente.ID).IsZero())

	// El CASCADE arrastró detalles y pagos.
	var nDetalles, nPagos int64
	require.NoError(t, e.store.DB().Model(&model.VentaDetalle{}).Where("venta_id = ?", venta.ID).Count(&nDetalles).Error)
	require.NoError(t, e.store.DB().Model(&model.PagoVenta{}).Where("venta_id = ?", venta.ID).Count(&nPagos).Error)
	assert.Zero(t, nDetalles)
	assert.Zero(t, nPagos)

	_, err = e.ventas.ObtenerVenta(ctx, venta.ID)
	assert.Error(t, err)
}

func TestEliminarVentaConAbonoReverteBolsillo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente G")
	producto := e.seedProducto(t, "Néctar", 1, 100)
	nequi := e.metodoPago(t, model.MetodoNequi)

	venta := e.ventaSimple(t, cliente.ID, producto, "10", "1000") // total 10000

	_, err := e.pagos.RegistrarAbono(ctx, dto.RegistrarAbonoRequest{
		ClienteID:  cliente.ID,
		FechaAbono: fecha(2026, 8, 20),
		MontoTotal: dec("3000"),
		Detalles: []dto.DetalleAbonoRequest{{
			VentaID:      venta.ID,
			MetodoPagoID: nequi.ID,
			Monto:        dec("3000"),
		}},
	})
	require.NoError(t, err)
	require.True(t, e.saldoBolsillo(t, nequi.ID).Equal(dec("3000")))

	require.NoError(t, e.ventas.EliminarVenta(ctx, venta.ID))

	assert.True(t, e.saldoBolsillo(t, nequi.ID).IsZero())
	assert.True(t, e.saldoCliente(t, cliente.ID).IsZero())

	var nAbonoDetalles int64
	require.NoError(t, e.store.DB().Model(&model.AbonoDetalle{}).Where("venta_id = ?", venta.ID).Count(&nAbonoDetalles).Error)
	assert.Zero(t, nAbonoDetalles, "abonos_detalle cascadea con la venta")
}

// Un pago y la eliminación de la misma venta compiten. La eliminación relee
// la venta dentro de su transacción, así que si el pago gana la carrera su
// crédito de bolsillo entra en la compensación; si pierde, la venta ya no
// existe y el pago falla. En ningún orden puede quedar saldo huérfano en el
// bolsillo.
func TestEliminarVentaConcurrenteConPagoCompensaBolsillo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cliente := e.seedCliente(t, "Cliente Carrera")
	producto := e.seedProducto(t, "Turrón", 1, 200)
	pres := producto.Presentaciones[0]
	efectivo := e.metodoPago(t, model.MetodoEfectivo)

	venta := e.ventaSimple(t, cliente.ID, producto, "100", "1000") // total 100000

	pagar := func() error {
		for i := 0; i < 20; i++ {
			_, err := e.pagos.AplicarPago(ctx, dto.AplicarPagoRequest{
				VentaID:      venta.ID,
				MetodoPagoID: efectivo.ID,
				Monto:        dec("60000"),
			})
			if errors.Is(err, ledgererr.ErrStorageBusy) {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			return err
		}
		return ledgererr.ErrStorageBusy
	}
	eliminar := func() error {
		for i := 0; i < 20; i++ {
			err := e.ventas.EliminarVenta(ctx, venta.ID)
			if errors.Is(err, ledgererr.ErrStorageBusy) {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			return err
		}
		return ledgererr.ErrStorageBusy
	}

	var wg sync.WaitGroup
	var pagoErr, elimErr error
	wg.Add(2)
	go func() { defer wg.Done(); pagoErr = pagar() }()
	go func() { defer wg.Done(); elimErr = eliminar() }()
	wg.Wait()

	require.NoError(t, elimErr, "la eliminación siempre termina aplicándose")
	if pagoErr != nil {
		assert.Contains(t, pagoErr.Error(), "no encontrada", "si el pago pierde, la venta ya no existe")
	}

	// Gane quien gane, el libro queda saldado.
	_, err := e.ventas.ObtenerVenta(ctx, venta.ID)
	assert.Error(t, err)
	assert.Equal(t, int64(200), e.stockUnidades(t, producto.ID, pres.ID))
	assert.True(t, e.saldoBolsillo(t, efectivo.ID).IsZero(), "sin crédito huérfano en el bolsillo")
	assert.True(t, e.saldoCliente(t, cliente.ID).IsZero())
}
