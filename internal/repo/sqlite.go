package repo

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/order-intake-service/internal/model"
)

const createOrdersTable = `CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT,
	table_number TEXT,
	items TEXT,
	total_cost REAL,
	note TEXT
)`

// SQLiteOrderRepository writes orders to a file-backed SQLite database. Each
// call opens its own connection and releases it before returning; no handle
// is held across requests.
type SQLiteOrderRepository struct {
	path string
}

func NewSQLiteOrderRepository(path string) *SQLiteOrderRepository {
	return &SQLiteOrderRepository{path: path}
}

// InitSchema creates the orders table if it does not exist. It must run
// before the listener accepts traffic; the caller treats failure as fatal.
func (r *SQLiteOrderRepository) InitSchema(ctx context.Context) error {
	db, err := sql.Open("sqlite3", r.path)
	if err != nil {
		return err
	}
	defer db.Close()

	return createSchema(ctx, db)
}

// Insert stores one row with the rendered items summary. The id column is
// assigned by SQLite.
func (r *SQLiteOrderRepository) Insert(ctx context.Context, order *model.Order) error {
	db, err := sql.Open("sqlite3", r.path)
	if err != nil {
		return err
	}
	defer db.Close()

	return insertOrder(ctx, db, order)
}

func createSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createOrdersTable)
	return err
}

func insertOrder(ctx context.Context, db *sql.DB, order *model.Order) error {
	query := `INSERT INTO orders (timestamp, table_number, items, total_cost, note) VALUES (?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query, order.Timestamp, order.TableNumber, order.ItemsSummary(), order.TotalCost, order.Note)
	return err
}
