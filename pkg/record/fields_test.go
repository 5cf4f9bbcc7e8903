package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldStore_DefaultVisibility(t *testing.T) {
	s := NewFieldStore()
	s.SetDefault("status", "active")

	assert.Equal(t, "active", s.Get("status"))
	assert.False(t, s.Has("status"))
	assert.Empty(t, s.Keys())
	assert.Equal(t, "", ColumnList(s))
	assert.Equal(t, "", ParameterList(s, PlaceholderNamed))

	s.Set("status", "disabled")
	assert.Equal(t, "disabled", s.Get("status"))
	assert.Equal(t, []string{"status"}, s.Keys())
	assert.Equal(t, "@status", ParameterList(s, PlaceholderNamed))
}

func TestFieldStore_Ordering(t *testing.T) {
	s := NewFieldStore()
	for _, k := range []string{"name", "age", "id", "Zeta", "email"} {
		s.Set(k, k)
	}
	s.Set("age", 42)

	assert.Equal(t, []string{"Zeta", "age", "email", "id", "name"}, s.Keys())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 42, s.Get("age"))
}

func TestFieldStore_MissingKey(t *testing.T) {
	s := NewFieldStore()
	assert.Nil(t, s.Get("nope"))

	s.Set("nullable", nil)
	assert.True(t, s.Has("nullable"))
	assert.Nil(t, s.Get("nullable"))
}

func TestFieldStore_KeysIsACopy(t *testing.T) {
	s := NewFieldStore()
	s.Set("a", 1)
	keys := s.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Keys())
}
