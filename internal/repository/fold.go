package repository

import (
	"database/sql"
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// unicodeLower is registered with the SQLite driver because SQLite's
// built-in LOWER and LIKE only fold ASCII letters.
const unicodeLower = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(unicodeLower, 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return strings.ToLower(v), nil
			case []byte:
				return strings.ToLower(string(v)), nil
			}
			return args[0], nil
		})
}

// foldExpr lowercases col for a case-insensitive match on db's driver.
// MySQL's LOWER is already Unicode aware.
func foldExpr(db *sql.DB, col string) string {
	if _, ok := db.Driver().(*sqlite.Driver); ok {
		return unicodeLower + "(" + col + ")"
	}
	return "LOWER(" + col + ")"
}
