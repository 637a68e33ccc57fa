package infra_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/ledgererr"
	"github.com/nicobh12/inventory-app/internal/model"
)

func abrir(t *testing.T, path string) *infra.Store {
	t.Helper()
	store, err := infra.Open(infra.Options{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenCreaEsquemaYSemillas(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "inventario.db"))
	ctx := context.Background()

	assert.True(t, store.Exists())
	assert.Positive(t, store.Size())

	// Métodos de pago fijos con su bolsillo en cero.
	var metodos []model.MetodoPago
	require.NoError(t, store.Query(ctx, &metodos, "SELECT * FROM metodos_pago ORDER BY id"))
	require.Len(t, metodos, 4)
	codigos := make([]string, 0, 4)
	for _, m := range metodos {
		codigos = append(codigos, m.Codigo)
	}
	assert.Equal(t, []string{
		model.MetodoEfectivo, model.MetodoNequi, model.MetodoCajaSocial, model.MetodoCredito,
	}, codigos)

	var nBolsillos int64
	require.NoError(t, store.DB().Model(&model.Bolsillo{}).Count(&nBolsillos).Error)
	assert.Equal(t, int64(4), nBolsillos)

	// Configuración base.
	var valor string
	found, err := store.QueryOne(ctx, &valor,
		"SELECT valor FROM configuraciones WHERE clave = ?", model.ConfigRangoPreciosHabilitado)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1", valor)
}

func TestOpenEsIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")

	primero := abrir(t, path)
	require.NoError(t, primero.DB().Create(&model.Cliente{
		Departamento: "Santander", Municipio: "Floridablanca",
		NombreComercial: "Sobrevive al reopen", Activo: true,
	}).Error)
	require.NoError(t, primero.Close())

	// Reabrir no duplica semillas ni pierde datos.
	segundo := abrir(t, path)
	var nMetodos, nClientes int64
	require.NoError(t, segundo.DB().Model(&model.MetodoPago{}).Count(&nMetodos).Error)
	require.NoError(t, segundo.DB().Model(&model.Cliente{}).Count(&nClientes).Error)
	assert.Equal(t, int64(4), nMetodos)
	assert.Equal(t, int64(1), nClientes)
}

func TestOpenRutaVacia(t *testing.T) {
	_, err := infra.Open(infra.Options{})
	var storageErr *ledgererr.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, ledgererr.KindIO, storageErr.Kind)
}

func TestForeignKeysActivas(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "fk.db"))

	// Venta contra un cliente inexistente debe chocar con la FK y llegar
	// traducida como ConstraintError.
	err := store.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec(`INSERT INTO ventas (cliente_id, numero_factura, fecha_venta, total, saldo_pendiente)
			VALUES (999, 'F-1', '2026-08-01', 100, 100)`).Error
	})
	var constraintErr *ledgererr.ConstraintError
	require.ErrorAs(t, err, &constraintErr)
}

func TestRollbackAnteError(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "rollback.db"))
	ctx := context.Background()

	sentinela := errors.New("abortar")
	err := store.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&model.Cliente{
			Departamento: "Santander", Municipio: "Bucaramanga",
			NombreComercial: "No debe existir", Activo: true,
		}).Error; err != nil {
			return err
		}
		return sentinela
	})
	require.ErrorIs(t, err, sentinela)

	var n int64
	require.NoError(t, store.DB().Model(&model.Cliente{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCascadeDeVentaArrastraAbonosDetalle(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "cascade.db"))
	ctx := context.Background()

	err := store.WithTransaction(ctx, func(tx *gorm.DB) error {
		stmts := []string{
			`INSERT INTO clientes (id, departamento, municipio, nombre_comercial) VALUES (1, 'S', 'B', 'C')`,
			`INSERT INTO ventas (id, cliente_id, numero_factura, fecha_venta, total, saldo_pendiente)
				VALUES (1, 1, 'F-1', '2026-08-01', 100, 100)`,
			`INSERT INTO abonos_credito (id, cliente_id, fecha_abono, monto_total) VALUES (1, 1, '2026-08-02', 50)`,
			`INSERT INTO abonos_detalle (abono_id, venta_id, metodo_pago_id, monto) VALUES (1, 1, 1, 50)`,
		}
		for _, s := range stmts {
			if err := tx.Exec(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, store.DB().Exec(`DELETE FROM ventas WHERE id = 1`).Error)

	var nDetalles, nAbonos int64
	require.NoError(t, store.DB().Model(&model.AbonoDetalle{}).Count(&nDetalles).Error)
	require.NoError(t, store.DB().Model(&model.AbonoCredito{}).Count(&nAbonos).Error)
	assert.Zero(t, nDetalles, "abonos_detalle cascadea con la venta")
	assert.Equal(t, int64(1), nAbonos, "la cabecera del abono queda")
}

func TestNotifierPublicaEventos(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "events.db"))

	eventos := store.Events().Subscribe()

	dir := t.TempDir()
	path, err := store.Snapshot(context.Background(), dir)
	require.NoError(t, err)

	select {
	case ev := <-eventos:
		assert.Equal(t, infra.EventBackupCreated, ev.Type)
		assert.Equal(t, path, ev.Detail)
	default:
		t.Fatal("no llegó el evento de backup")
	}
}
