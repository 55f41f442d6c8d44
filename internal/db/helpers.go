package db

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Execer is satisfied by *sql.DB and *sql.Tx so repository helpers can run
// inside or outside a transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
}

// MySQL server error numbers this backend cares about.
const (
	mysqlErrDupEntry        = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

func mysqlErrNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsSerializationFailure reports whether err is a deadlock or lock wait
// timeout, i.e. the transaction lost a race and may be retried by the caller.
func IsSerializationFailure(err error) bool {
	switch mysqlErrNumber(err) {
	case mysqlErrDeadlock, mysqlErrLockWaitTimeout:
		return true
	}
	return false
}

// IsDuplicateEntry reports a unique-key violation.
func IsDuplicateEntry(err error) bool {
	return mysqlErrNumber(err) == mysqlErrDupEntry
}
