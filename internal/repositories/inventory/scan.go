package inventory

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

func scanItems(rows *sql.Rows) ([]models.InventoryItem, error) {
	defer rows.Close()

	result := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Threshold); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory rows: %w", err)
	}
	return result, nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
