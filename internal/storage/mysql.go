package storage

import "database/sql"

// MySQLClient wraps direct SQL access to the orchestrator metadata database.
type MySQLClient struct {
	db *sql.DB
}

// NewMySQLClient wires a sql.DB; pass a configured instance from main.
func NewMySQLClient(db *sql.DB) *MySQLClient {
	return &MySQLClient{db: db}
}
