package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nicobh12/inventory-app/internal/ledgererr"
)

// Snapshot produce una copia íntegra del almacén en dir, nombrada con
// timestamp. Usa VACUUM INTO, que toma una vista consistente sin bloquear a
// los escritores más allá de la duración de la copia.
func (s *Store) Snapshot(ctx context.Context, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ledgererr.StorageError{Kind: ledgererr.KindIO, Message: err.Error(), Err: err}
	}

	name := fmt.Sprintf("inventario_backup_%s.db", time.Now().Format("20060102_150405"))
	dest := filepath.Join(dir, name)

	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", dest).Error; err != nil {
		return "", translate(err)
	}

	log.Info().Str("path", dest).Msg("backup creado")
	s.notifier.Publish(Event{Type: EventBackupCreated, Detail: dest})
	return dest, nil
}

// Size devuelve el tamaño del archivo de datos en bytes; 0 si no existe.
func (s *Store) Size() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Exists reporta si el archivo de datos existe.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
