package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateKeyError checks if the error corresponds to a MySQL/MariaDB
// unique constraint violation. This lets the uniqueness constraints on
// providers.phone and reviews.booking_id surface as conflict errors instead
// of generic 500 errors, including under concurrent inserts.
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// isForeignKeyConstraintError checks if the error corresponds to a MySQL/
// MariaDB foreign key constraint failure.
func isForeignKeyConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
