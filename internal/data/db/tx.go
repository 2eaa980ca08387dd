package db

import (
	"database/sql"

	"gorm.io/gorm"
)

// SnapshotTxOptions returns options for a read transaction whose statements all
// observe the same snapshot. SQLite transactions are already serializable and use
// the driver default.
func SnapshotTxOptions(db *gorm.DB) *sql.TxOptions {
	switch DialectOf(db) {
	case DialectPostgres, DialectMySQL:
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	default:
		return nil
	}
}
