package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-maker/internal/config"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
)

// Repositories bundles every persistence boundary of the application behind
// one constructor so that the service layer receives a single wired value.
type Repositories struct {
	Users    UserRepository
	Invoices InvoiceRepository
}

// NewRepositories opens the SQLite database, applies pending migrations, and
// constructs all repositories on top of the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Repositories{
		Users:    NewUserRepository(db, log),
		Invoices: NewInvoiceRepository(db, log),
	}, nil
}
