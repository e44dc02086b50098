package users

import (
	"context"
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

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, password) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.Username, user.Password)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	user.ID = id
	return user, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, username, password string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE username = ? AND password = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, username, password).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}
