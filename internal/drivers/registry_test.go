package drivers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaprecord/pkg/record"
)

func TestBuiltinDrivers(t *testing.T) {
	tests := []struct {
		name  string
		style record.PlaceholderStyle
	}{
		{name: "sqlite", style: record.PlaceholderNamed},
		{name: "pgx", style: record.PlaceholderDollar},
		{name: "duckdb", style: record.PlaceholderDollar},
	}

	registered := sql.Drivers()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.style, d.Placeholder)
			assert.Contains(t, registered, d.Name, "database/sql driver must be linked in")
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	d, ok := Get("SQLite")
	require.True(t, ok)
	assert.Equal(t, "sqlite", d.Name)
	assert.True(t, IsRegistered("PGX"))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("oracle")
	require.Error(t, err)

	var unknown *UnknownDriverError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "oracle", unknown.Name)
	assert.Equal(t, List(), unknown.Available)
	assert.Contains(t, err.Error(), `unknown driver "oracle"`)
}
