// Package infra owns the physical SQLite store: apertura con pragmas,
// transacciones con rollback garantizado, snapshots y notificación de eventos.
package infra

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nicobh12/inventory-app/internal/ledgererr"
)

// Options configura la apertura del almacén.
type Options struct {
	// Path es la ruta del archivo de base de datos. El directorio se crea si
	// no existe.
	Path string
	// BusyTimeoutMS acota la espera por el lock de escritura; al vencerse la
	// operación falla con ledgererr.ErrStorageBusy.
	BusyTimeoutMS int
}

// Store es el gestor de conexión del proceso: un único pool sobre el archivo
// SQLite, construido explícitamente e inyectado a los servicios. No hay
// instancia global; el host decide cuántos Store abre y cuándo los cierra.
type Store struct {
	db       *gorm.DB
	path     string
	notifier *Notifier
}

// Open abre (o crea) el almacén, aplica los pragmas de integridad y
// durabilidad, y deja el esquema y los datos semilla listos.
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, &ledgererr.StorageError{Kind: ledgererr.KindIO, Message: "ruta de base de datos vacía"}
	}
	if opts.BusyTimeoutMS <= 0 {
		opts.BusyTimeoutMS = 5000
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, &ledgererr.StorageError{Kind: ledgererr.KindIO, Message: err.Error(), Err: err}
	}

	// foreign_keys y busy_timeout se fijan por conexión vía DSN para que cada
	// conexión del pool los herede; journal_mode WAL persiste en el archivo.
	dsn := fmt.Sprintf(
		"%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(%d)",
		opts.Path, opts.BusyTimeoutMS,
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &ledgererr.StorageError{Kind: ledgererr.KindDriver, Message: err.Error(), Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &ledgererr.StorageError{Kind: ledgererr.KindDriver, Message: err.Error(), Err: err}
	}
	// WAL admite un escritor y múltiples lectores; un pool pequeño alcanza.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)

	s := &Store{db: db, path: opts.Path, notifier: NewNotifier()}

	if err := s.initSchema(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info().Str("path", opts.Path).Msg("base de datos lista")
	s.notifier.Publish(Event{Type: EventConnectionEstablished, Detail: opts.Path})
	return s, nil
}

// DB expone el *gorm.DB para los repositorios.
func (s *Store) DB() *gorm.DB { return s.db }

// Path devuelve la ruta del archivo de datos.
func (s *Store) Path() string { return s.path }

// Events devuelve el notificador al que el host puede suscribirse.
func (s *Store) Events() *Notifier { return s.notifier }

// Close cierra el pool subyacente. El Store no debe usarse después.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return translate(err)
	}
	return translate(sqlDB.Close())
}

// WithTransaction ejecuta fn dentro de una transacción de escritura: commit al
// retornar nil, rollback ante error o panic. Los errores de dominio pasan
// intactos; los del driver se traducen a la taxonomía de ledgererr.
func (s *Store) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return translate(s.db.WithContext(ctx).Transaction(fn))
}

// Query ejecuta una consulta de lectura fuera de transacción y vuelca las
// filas en dest.
func (s *Store) Query(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	return translate(s.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error)
}

// QueryOne ejecuta una consulta que espera a lo sumo una fila. Devuelve
// (false, nil) cuando no hay resultado.
func (s *Store) QueryOne(ctx context.Context, dest interface{}, sql string, args ...interface{}) (bool, error) {
	res := s.db.WithContext(ctx).Raw(sql, args...).Scan(dest)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// translate convierte errores crudos del driver en la taxonomía pública.
// gorm.ErrRecordNotFound se conserva: los servicios deciden su significado.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if ledgererr.IsDomain(err) ||
		errors.Is(err, ledgererr.ErrStorageBusy) ||
		errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY"):
		return ledgererr.ErrStorageBusy
	case strings.Contains(msg, "constraint failed") || strings.Contains(msg, "constraint violation"):
		return &ledgererr.ConstraintError{Message: msg, Err: err}
	case strings.Contains(msg, "SQLITE_") || strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "disk I/O error") || strings.Contains(msg, "database disk image"):
		return &ledgererr.StorageError{Kind: ledgererr.KindDriver, Message: msg, Err: err}
	default:
		// Errores de la propia función transaccional pasan sin envolver.
		return err
	}
}
