package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	query := `INSERT INTO inventory (item_name, quantity, threshold) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Quantity, item.Threshold)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	item.ID = id
	return item, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query := `SELECT id, item_name, quantity, threshold FROM inventory WHERE id = ?`

	item := &models.InventoryItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Quantity, &item.Threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select item: %w", err)
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE inventory SET quantity = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update quantity: %w", err)
	}
	return rowsAffected(res)
}

func (r *SQLiteRepository) Update(ctx context.Context, item *models.InventoryItem) (int64, error) {
	query := `UPDATE inventory SET item_name = ?, quantity = ?, threshold = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Quantity, item.Threshold, item.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrDuplicateName
		}
		return 0, fmt.Errorf("failed to update item: %w", err)
	}
	return rowsAffected(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, item_name, quantity, threshold FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return scanItems(rows)
}

func (r *SQLiteRepository) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	query := `SELECT id, item_name, quantity, threshold FROM inventory WHERE quantity <= threshold ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select low stock items: %w", err)
	}
	return scanItems(rows)
}
