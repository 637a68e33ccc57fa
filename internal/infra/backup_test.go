package infra_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/model"
)

func TestSnapshotProduceCopiaConsistente(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "origen.db"))
	ctx := context.Background()

	require.NoError(t, store.DB().Create(&model.Cliente{
		Departamento: "Santander", Municipio: "Bucaramanga",
		NombreComercial: "Cliente Respaldo", Activo: true,
	}).Error)

	dir := t.TempDir()
	path, err := store.Snapshot(ctx, dir)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "inventario_backup_"))
	assert.True(t, strings.HasSuffix(base, ".db"))

	// La copia es un almacén válido con los mismos datos.
	copia, err := infra.Open(infra.Options{Path: path})
	require.NoError(t, err)
	defer copia.Close()

	var n int64
	require.NoError(t, copia.DB().Model(&model.Cliente{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSnapshotCreaDirectorio(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "origen.db"))

	dir := filepath.Join(t.TempDir(), "anidado", "backups")
	path, err := store.Snapshot(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}
