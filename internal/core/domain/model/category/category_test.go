package category_test

import (
	"strings"
	"testing"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := category.NewCategory("Documents")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Documents", c.Name())

	_, err = category.NewCategory("  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = category.NewCategory(strings.Repeat("x", 31))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCategory_Rename(t *testing.T) {
	t.Run("same name is a no-op", func(t *testing.T) {
		c, _ := category.RestoreCategory(1, "Fragile")

		changed, err := c.Rename("Fragile")

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("new name", func(t *testing.T) {
		c, _ := category.RestoreCategory(1, "Fragile")

		changed, err := c.Rename("Glass")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Glass", c.Name())
	})

	t.Run("invalid name keeps the old one", func(t *testing.T) {
		c, _ := category.RestoreCategory(1, "Fragile")

		_, err := c.Rename("")

		require.Error(t, err)
		assert.Equal(t, "Fragile", c.Name())
	})
}
