package cells_test

import (
	"log"
	"testing"

	"github.com/celljam/celljam/cells"
	"github.com/stretchr/testify/assert"
)

// from README
func TestBasicUsage(t *testing.T) {
	a := cells.New(2)
	b := cells.Computed(func(ctx *cells.Context) int {
		return a.Use(ctx) * 10
	})

	assert.Equal(t, 20, b.Value())

	a.SetValue(3)
	assert.True(t, b.Invalidated())
	assert.Equal(t, 30, b.Value())
}

// from README
func TestBasicListener(t *testing.T) {
	count := cells.NewIntCell(1)
	double := cells.ComputedInt(func(ctx *cells.Context) int {
		return count.Use(ctx) * 2
	})

	double.AddListener(cells.ListenFunc(func(src cells.Observable) {
		log.Printf("double went stale, worth %d now", double.Value())
	}))

	assert.Equal(t, 2, double.Value())
	count.SetValue(2)
	assert.Equal(t, 4, double.Value())
}
