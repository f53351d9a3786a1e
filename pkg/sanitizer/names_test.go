package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K3nguruh/validation/pkg/sanitizer"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"trim", "collapse", "strip-control", "lower", "none", " TRIM "} {
		fn, err := sanitizer.Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn)
	}

	_, err := sanitizer.Lookup("upper")
	assert.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
}

func TestParse(t *testing.T) {
	clean, err := sanitizer.Parse("collapse", "lower")
	require.NoError(t, err)
	assert.Equal(t, "jane doe", clean("  Jane \t DOE "))

	none, err := sanitizer.Parse()
	require.NoError(t, err)
	assert.Equal(t, " raw ", none(" raw "))

	_, err = sanitizer.Parse("trim", "bogus")
	assert.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
}
