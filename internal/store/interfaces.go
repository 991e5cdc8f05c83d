package store

import (
	"context"

	"github.com/MKhiriev/go-invoice-maker/models"
)

// UserRepository is the persistence boundary for staff accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the assigned ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername looks up a user by exact, case-sensitive username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// OwnerExists reports whether any owner account has been created.
	// Checked at request time by the one-time owner setup gate, never cached.
	OwnerExists(ctx context.Context) (bool, error)
}

// InvoiceRepository is the persistence boundary for invoices. Invoices are
// append-only: no update or delete operation exists.
type InvoiceRepository interface {
	// CreateInvoice persists the invoice atomically, assigning its ID and a
	// fresh unguessable view token. Returns the stored invoice.
	CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	// GetInvoiceByID returns the full invoice for the internal identifier.
	GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error)
	// GetInvoiceByToken returns the full invoice for a public view token.
	GetInvoiceByToken(ctx context.Context, token string) (models.Invoice, error)
	// ListRecentInvoices returns up to limit invoice summaries, most recent
	// first. The page size is bounded regardless of the requested limit.
	ListRecentInvoices(ctx context.Context, limit uint64) ([]models.Invoice, error)
}
