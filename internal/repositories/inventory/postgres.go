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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	query :=
		`INSERT INTO inventory (item_name, quantity, threshold)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Quantity, item.Threshold).Scan(&item.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateName
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query :=
		`SELECT id, item_name, quantity, threshold FROM inventory
		 WHERE id = $1
		 `

	item := &models.InventoryItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Quantity, &item.Threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE inventory SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rowsAffected(res)
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.InventoryItem) (int64, error) {
	query :=
		`UPDATE inventory SET item_name = $1, quantity = $2, threshold = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Quantity, item.Threshold, item.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrDuplicateName
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rowsAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, item_name, quantity, threshold FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanItems(rows)
}

func (r *PostgresRepository) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	query :=
		`SELECT id, item_name, quantity, threshold FROM inventory
		 WHERE quantity <= threshold
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanItems(rows)
}
