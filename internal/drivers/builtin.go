package drivers

import (
	"github.com/leapstack-labs/leaprecord/pkg/record"

	// database/sql drivers
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/marcboeker/go-duckdb"
	_ "modernc.org/sqlite"
)

func init() {
	Register(Driver{Name: "sqlite", Placeholder: record.PlaceholderNamed})
	Register(Driver{Name: "pgx", Placeholder: record.PlaceholderDollar})
	Register(Driver{Name: "duckdb", Placeholder: record.PlaceholderDollar})
}
