package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstadoPorSaldo(t *testing.T) {
	total := decimal.NewFromInt(100)

	assert.Equal(t, VentaPendiente, EstadoPorSaldo(decimal.NewFromInt(100), total))
	assert.Equal(t, VentaParcial, EstadoPorSaldo(decimal.NewFromInt(40), total))
	assert.Equal(t, VentaPagada, EstadoPorSaldo(decimal.Zero, total))

	// 0.01 restante sigue siendo PARCIAL, no PAGADA.
	assert.Equal(t, VentaParcial, EstadoPorSaldo(decimal.RequireFromString("0.01"), total))
}
