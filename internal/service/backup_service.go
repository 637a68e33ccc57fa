package service

import (
	"context"
	"os"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/infra"
)

// BackupService expone los snapshots y la introspección de salud del almacén.
type BackupService interface {
	CrearBackup(ctx context.Context) (*dto.BackupResponse, error)
	EstadoAlmacen(ctx context.Context) (*dto.EstadoAlmacenResponse, error)
}

type backupService struct {
	store     *infra.Store
	backupDir string
}

func NewBackupService(store *infra.Store, backupDir string) BackupService {
	return &backupService{store: store, backupDir: backupDir}
}

func (s *backupService) CrearBackup(ctx context.Context) (*dto.BackupResponse, error) {
	path, err := s.store.Snapshot(ctx, s.backupDir)
	if err != nil {
		return nil, err
	}
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	return &dto.BackupResponse{Path: path, SizeBytes: size}, nil
}

func (s *backupService) EstadoAlmacen(_ context.Context) (*dto.EstadoAlmacenResponse, error) {
	return &dto.EstadoAlmacenResponse{
		Path:      s.store.Path(),
		Existe:    s.store.Exists(),
		SizeBytes: s.store.Size(),
	}, nil
}
