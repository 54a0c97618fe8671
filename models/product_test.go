package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Apply(t *testing.T) {
	p := Product{
		ID:       "11111111-1111-1111-1111-111111111111",
		Name:     "Instalasi Jaringan",
		Price:    dec("2500000"),
		Category: "Jaringan",
		Features: []string{"Survey lokasi"},
	}

	name := "Instalasi Jaringan Kantor"
	price := dec("3000000")
	p.Apply(ProductChanges{Name: &name, Price: &price})

	assert.Equal(t, name, p.Name)
	assert.True(t, p.Price.Equal(price))
	assert.Equal(t, "Jaringan", p.Category)
	assert.Equal(t, []string{"Survey lokasi"}, p.Features, "features untouched without SetFeatures")

	p.Apply(ProductChanges{SetFeatures: true, Features: []string{}})
	assert.Empty(t, p.Features)
}

func TestProductCartItem(t *testing.T) {
	p := &Product{ID: "p-1", Name: "Backup Server", Price: dec("1200000")}

	it, err := ProductCartItem(p)
	require.NoError(t, err)
	assert.Equal(t, "p-1", it.ItemID)
	assert.Equal(t, PlaceholderImage, it.ImageRef)
}
