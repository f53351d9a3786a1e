package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/K3nguruh/validation/pkg/validator"
)

func TestMin(t *testing.T) {
	t.Run("compares numeric values by magnitude", func(t *testing.T) {
		assert.True(t, validator.Min("17", "16"))
		assert.True(t, validator.Min("16", "16"))
		assert.False(t, validator.Min("15", "16"))
		assert.False(t, validator.Min("9", "10"))
		assert.True(t, validator.Min("1e3", "999"))
		assert.True(t, validator.Min("-0.5", "-1"))
		assert.False(t, validator.Min(15, "16"))
	})

	t.Run("compares other strings by length", func(t *testing.T) {
		assert.True(t, validator.Min("abcdef", "5"))
		assert.True(t, validator.Min("abcdef", "6"))
		assert.False(t, validator.Min("abcdef", "7"))
		assert.True(t, validator.Min("äöü", "3"))
		assert.False(t, validator.Min("", "1"))
	})

	t.Run("compares dates when a format is given", func(t *testing.T) {
		assert.True(t, validator.Min("2024-06-01", "2024-01-01", "YYYY-MM-DD"))
		assert.True(t, validator.Min("2024-01-01", "2024-01-01", "YYYY-MM-DD"))
		assert.False(t, validator.Min("2023-12-31", "2024-01-01", "YYYY-MM-DD"))
	})

	t.Run("fails when the date does not parse", func(t *testing.T) {
		assert.False(t, validator.Min("2024-13-01", "2024-01-01", "YYYY-MM-DD"))
		assert.False(t, validator.Min("2024-06-01", "yesterday", "YYYY-MM-DD"))
	})

	t.Run("fails when the bound is not numeric", func(t *testing.T) {
		assert.False(t, validator.Min("abc", "x"))
		assert.False(t, validator.Min("5", ""))
	})

	t.Run("treats an empty format as absent", func(t *testing.T) {
		assert.True(t, validator.Min("5", "5", ""))
	})
}

func TestMax(t *testing.T) {
	assert.True(t, validator.Max("9", "10"))
	assert.True(t, validator.Max("10", "10"))
	assert.False(t, validator.Max("11", "10"))
	assert.True(t, validator.Max("-1.5", "0"))
	assert.True(t, validator.Max("abc", "3"))
	assert.False(t, validator.Max("abcd", "3"))
	assert.True(t, validator.Max("2024-01-01", "2024-01-31", "YYYY-MM-DD"))
	assert.False(t, validator.Max("2024-02-01", "2024-01-31", "YYYY-MM-DD"))
}

func TestBetween(t *testing.T) {
	t.Run("numeric", func(t *testing.T) {
		assert.True(t, validator.Between("1", "1", "10"))
		assert.True(t, validator.Between("5", "1", "10"))
		assert.True(t, validator.Between("10", "1", "10"))
		assert.False(t, validator.Between("0", "1", "10"))
		assert.False(t, validator.Between("11", "1", "10"))
	})

	t.Run("length", func(t *testing.T) {
		assert.True(t, validator.Between("hello", "3", "5"))
		assert.False(t, validator.Between("hi", "3", "5"))
		assert.False(t, validator.Between("hello!", "3", "5"))
	})

	t.Run("dates", func(t *testing.T) {
		assert.True(t, validator.Between("2024-03-01", "2024-01-01", "2024-12-31", "YYYY-MM-DD"))
		assert.False(t, validator.Between("2025-01-01", "2024-01-01", "2024-12-31", "YYYY-MM-DD"))
		assert.False(t, validator.Between("2024-03-01", "2024-01-01", "someday", "YYYY-MM-DD"))
	})

	t.Run("empty format falls back to numeric", func(t *testing.T) {
		assert.True(t, validator.Between("5", "1", "10", ""))
	})
}

func TestLess(t *testing.T) {
	assert.True(t, validator.Less("9", "10"))
	assert.False(t, validator.Less("10", "10"))
	assert.True(t, validator.Less("ab", "3"))
	assert.False(t, validator.Less("abc", "3"))
	assert.True(t, validator.Less("2023-12-31", "2024-01-01", "YYYY-MM-DD"))
	assert.False(t, validator.Less("2024-01-01", "2024-01-01", "YYYY-MM-DD"))
}

func TestGreater(t *testing.T) {
	assert.True(t, validator.Greater("11", "10"))
	assert.False(t, validator.Greater("10", "10"))
	assert.True(t, validator.Greater("abcd", "3"))
	assert.False(t, validator.Greater("abc", "3"))
	assert.True(t, validator.Greater("2024-01-02", "2024-01-01", "YYYY-MM-DD"))
	assert.False(t, validator.Greater("2024-01-01", "2024-01-01", "YYYY-MM-DD"))

	t.Run("date mode rejects text the format does not cover", func(t *testing.T) {
		format := "YYYY-MM-DD HH:mm:ss"
		assert.True(t, validator.Greater("2024-01-01 10:00:01", "2024-01-01 10:00:00", format))
		assert.False(t, validator.Greater("2024-01-01 10:00:00.5", "2024-01-01 10:00:00", format))
		assert.False(t, validator.Less("2024-01-01 09:00:00", "2024-01-01 10:00:00.5", format))
	})

	t.Run("huge numbers stay numeric", func(t *testing.T) {
		assert.True(t, validator.Greater("1e400", "1000"))
		assert.False(t, validator.Less("1e400", "10"))
		assert.True(t, validator.Less("-1e400", "0"))
	})
}

func TestIsNumeric(t *testing.T) {
	for _, v := range []any{"0", "-12", "+3.5", ".5", "5.", "1e3", "2E-4", "1e400", "-1e400", 42, 1.25} {
		assert.True(t, validator.IsNumeric(v), "%v should be numeric", v)
	}
	for _, v := range []any{"", "abc", "12a", "0x1F", "Inf", "NaN", "1_000", " 5", nil} {
		assert.False(t, validator.IsNumeric(v), "%v should not be numeric", v)
	}
}
