package postgres

import (
	"database/sql"
	"errors"
)

// IsNoRowsError reports whether err means the query matched no row.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
