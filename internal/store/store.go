// Package store is the persistence facade used by the services. It owns the
// database handle, applies the schema on open and exposes the user, inventory
// and settings operations on top of the backend repositories.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/migrations"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/stockkeeper/internal/repositories/settings"
)

type Options struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver string
	DSN    string
	// Strategy is the migration strategy name, "destructive" by default.
	Strategy string
	Logger   logging.Logger
}

type Store struct {
	db       *sql.DB
	rm       repomanager.RepositoryManager
	strategy migrations.Strategy
	logger   logging.Logger
}

// Open connects to the configured backend and brings its schema up to date.
func Open(ctx context.Context, opts Options) (*Store, error) {
	rm, err := repomanager.New(opts.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(rm.DriverName(), opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if rm.DriverName() == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s, err := New(db, rm, opts.Strategy, opts.Logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := s.InitializeSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already opened database. The schema is not touched.
func New(db *sql.DB, rm repomanager.RepositoryManager, strategy string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	st, err := migrations.NewStrategy(strategy, rm.Migrations(), logger)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, rm: rm, strategy: st, logger: logger}, nil
}

// InitializeSchema is safe to call any number of times.
func (s *Store) InitializeSchema(ctx context.Context) error {
	if err := s.strategy.Apply(ctx, s.db); err != nil {
		return fmt.Errorf("schema initialization: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) FindUser(ctx context.Context, username, password string) (bool, error) {
	return s.rm.Users(s.db).Exists(ctx, username, password)
}

func (s *Store) CreateUser(ctx context.Context, username, password string) (int64, error) {
	u, err := s.rm.Users(s.db).Create(ctx, &models.User{Username: username, Password: password})
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *Store) CreateItem(ctx context.Context, name string, quantity, threshold int) (int64, error) {
	item, err := s.rm.Inventory(s.db).Create(ctx, &models.InventoryItem{Name: name, Quantity: quantity, Threshold: threshold})
	if err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	return s.rm.Inventory(s.db).GetByID(ctx, id)
}

func (s *Store) UpdateItemQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	return s.rm.Inventory(s.db).UpdateQuantity(ctx, id, quantity)
}

func (s *Store) UpdateItem(ctx context.Context, id int64, name string, quantity, threshold int) (int64, error) {
	return s.rm.Inventory(s.db).Update(ctx, &models.InventoryItem{ID: id, Name: name, Quantity: quantity, Threshold: threshold})
}

func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	return s.rm.Inventory(s.db).Delete(ctx, id)
}

func (s *Store) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	return s.rm.Inventory(s.db).List(ctx)
}

func (s *Store) ListLowStockItems(ctx context.Context) ([]models.InventoryItem, error) {
	return s.rm.Inventory(s.db).ListLowStock(ctx)
}

// NotificationSettings returns zero values for settings never saved.
func (s *Store) NotificationSettings(ctx context.Context) (models.NotificationSettings, error) {
	var ns models.NotificationSettings
	repo := s.rm.Settings(s.db)

	dest, err := repo.Get(ctx, settings.KeyDestination)
	switch {
	case err == nil:
		ns.Destination = dest
	case !errors.Is(err, common.ErrorNotFound):
		return ns, err
	}

	enabled, err := repo.Get(ctx, settings.KeyEnabled)
	switch {
	case err == nil:
		ns.Enabled, err = strconv.ParseBool(enabled)
		if err != nil {
			return ns, fmt.Errorf("malformed setting %s=%q: %w", settings.KeyEnabled, enabled, err)
		}
	case !errors.Is(err, common.ErrorNotFound):
		return ns, err
	}

	return ns, nil
}

// ClearNotificationSettings forgets the saved destination and disables
// alerts by removing both keys.
func (s *Store) ClearNotificationSettings(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.Settings(tx)
		if err := repo.Delete(ctx, settings.KeyDestination); err != nil {
			return err
		}
		return repo.Delete(ctx, settings.KeyEnabled)
	})
}

// SaveNotificationSettings writes both keys in one transaction.
func (s *Store) SaveNotificationSettings(ctx context.Context, ns models.NotificationSettings) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.Settings(tx)
		if err := repo.Set(ctx, settings.KeyDestination, ns.Destination); err != nil {
			return err
		}
		return repo.Set(ctx, settings.KeyEnabled, strconv.FormatBool(ns.Enabled))
	})
}
