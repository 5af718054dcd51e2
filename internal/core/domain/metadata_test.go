package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_Lookup(t *testing.T) {
	md := Metadata{
		{Key: "Title", Value: String("first")},
		{Key: "title", Value: String("second")},
		{Key: "tags", Value: Array(String("a"))},
	}

	t.Run("matches case-insensitively and first wins", func(t *testing.T) {
		v, ok := md.Lookup("TITLE")
		require.True(t, ok)
		s, ok := v.AsString()
		require.True(t, ok)
		assert.Equal(t, "first", s)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := md.Lookup("description")
		assert.False(t, ok)
	})

	t.Run("keys keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"Title", "title", "tags"}, md.Keys())
	})
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
		ok    bool
	}{
		{"string", String("hello"), "hello", true},
		{"integer number", Number(42), "42", true},
		{"fractional number", Number(1.5), "1.5", true},
		{"bool", Bool(true), "true", true},
		{"null", Null(), "", false},
		{"array", Array(String("x")), "", false},
		{"mapping", Mapping(Metadata{{Key: "k", Value: String("v")}}), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Text()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_StringSlice(t *testing.T) {
	t.Run("all strings", func(t *testing.T) {
		got, ok := Array(String("b"), String("a")).StringSlice()
		require.True(t, ok)
		assert.Equal(t, []string{"b", "a"}, got)
	})

	t.Run("empty array is accepted", func(t *testing.T) {
		got, ok := Array().StringSlice()
		require.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("mixed array is rejected wholesale", func(t *testing.T) {
		got, ok := Array(String("a"), Number(1)).StringSlice()
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("scalar is rejected", func(t *testing.T) {
		_, ok := String("a, b").StringSlice()
		assert.False(t, ok)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
