package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductInput_Validate(t *testing.T) {
	valid := ProductInput{Category: "roses", Description: "Rosas Rojas", StBun: 12, Price: 10}

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("missing description", func(t *testing.T) {
		in := valid
		in.Description = ""
		err := in.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("stBun below one", func(t *testing.T) {
		in := valid
		in.StBun = 0
		assert.ErrorIs(t, in.Validate(), ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		in := valid
		in.Price = -0.01
		assert.ErrorIs(t, in.Validate(), ErrInvalidInput)
	})

	t.Run("zero price allowed", func(t *testing.T) {
		in := valid
		in.Price = 0
		assert.NoError(t, in.Validate())
	})
}

func TestProduct_BoxPrice(t *testing.T) {
	p := Product{StBun: 12, Price: 10}
	assert.InDelta(t, 120.0, p.BoxPrice(), 1e-9)
}
