package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nicobh12/inventory-app/internal/model"
)

// ConfigRepository accede al almacén clave→valor de configuraciones.
type ConfigRepository interface {
	Get(ctx context.Context, clave string) (string, error)
	// GetDefault devuelve def cuando la clave no existe o no tiene valor.
	GetDefault(ctx context.Context, clave, def string) string
	Set(ctx context.Context, clave, valor string) error
	All(ctx context.Context) (map[string]string, error)
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) Get(ctx context.Context, clave string) (string, error) {
	var c model.Configuracion
	if err := r.db.WithContext(ctx).First(&c, "clave = ?", clave).Error; err != nil {
		return "", err
	}
	if c.Valor == nil {
		return "", nil
	}
	return *c.Valor, nil
}

func (r *configRepo) GetDefault(ctx context.Context, clave, def string) string {
	v, err := r.Get(ctx, clave)
	if errors.Is(err, gorm.ErrRecordNotFound) || err != nil || v == "" {
		return def
	}
	return v
}

func (r *configRepo) Set(ctx context.Context, clave, valor string) error {
	c := model.Configuracion{Clave: clave, Valor: &valor}
	return r.db.WithContext(ctx).Save(&c).Error
}

func (r *configRepo) All(ctx context.Context) (map[string]string, error) {
	var rows []model.Configuracion
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, c := range rows {
		if c.Valor != nil {
			out[c.Clave] = *c.Valor
		}
	}
	return out, nil
}
