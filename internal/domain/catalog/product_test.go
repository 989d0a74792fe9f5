package catalog

import (
	"strings"
	"testing"

	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Jarrón artesanal", "Pieza torneada a mano", decimal.NewFromInt(85000), 5)
	require.NoError(t, err)
	assert.Equal(t, "Jarrón artesanal", p.Name)
	assert.Equal(t, 5, p.Stock)
	assert.True(t, p.Active)
	assert.NotEqual(t, p.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := NewProduct("", "desc", decimal.NewFromInt(100), 1)
	assert.Error(t, err)

	_, err = NewProduct(strings.Repeat("x", 121), "desc", decimal.NewFromInt(100), 1)
	assert.Error(t, err)

	_, err = NewProduct("Taza", "desc", decimal.NewFromInt(-1), 1)
	assert.Error(t, err)

	_, err = NewProduct("Taza", "desc", decimal.NewFromInt(100), -1)
	assert.ErrorIs(t, err, shared.ErrInvalidAmount)
}

func TestProduct_DecrementStock(t *testing.T) {
	p, err := NewProduct("Matera", "", decimal.NewFromInt(30000), 3)
	require.NoError(t, err)

	require.NoError(t, p.DecrementStock(2))
	assert.Equal(t, 1, p.Stock)

	err = p.DecrementStock(2)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Equal(t, 1, p.Stock, "stock unchanged after failed decrement")

	assert.ErrorIs(t, p.DecrementStock(-1), shared.ErrInvalidAmount)

	require.NoError(t, p.DecrementStock(1))
	assert.Equal(t, 0, p.Stock)
	assert.ErrorIs(t, p.DecrementStock(1), shared.ErrInsufficientStock)
}

func TestProduct_IncrementStock(t *testing.T) {
	p, err := NewProduct("Matera", "", decimal.NewFromInt(30000), 0)
	require.NoError(t, err)

	require.NoError(t, p.IncrementStock(4))
	assert.Equal(t, 4, p.Stock)
	assert.ErrorIs(t, p.IncrementStock(-1), shared.ErrInvalidAmount)
}

func TestProduct_InStock(t *testing.T) {
	p, err := NewProduct("Plato", "", decimal.NewFromInt(20000), 1)
	require.NoError(t, err)
	assert.True(t, p.InStock())

	p.Stock = 0
	assert.False(t, p.InStock())

	p.Stock = 5
	p.Active = false
	assert.False(t, p.InStock())
}

func TestProduct_Snippet(t *testing.T) {
	p, err := NewProduct("Pocillo", "Cerámica esmaltada", decimal.NewFromInt(15000), 1)
	require.NoError(t, err)

	assert.Equal(t, "Cerámica esmaltada", p.Snippet(100))
	// rune-safe truncation
	assert.Equal(t, "Cerámica", p.Snippet(8))
}
