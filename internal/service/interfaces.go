package service

import (
	"context"

	"github.com/MKhiriev/go-invoice-maker/models"
)

// OwnerSetupInput carries the one-time owner setup form fields.
type OwnerSetupInput struct {
	SetupKey        string
	Username        string
	Password        string
	PasswordConfirm string
}

// CreateInvoiceInput carries the raw invoice creation form fields. ItemsRaw
// is the free-form multi-line item text; everything else is stored as
// entered.
type CreateInvoiceInput struct {
	InvoiceNumber  string
	ClientName     string
	ClientEmail    string
	ClientAddress  string
	IssueDate      string
	DueDate        string
	Currency       string
	ItemsRaw       string
	PaymentMethods string
	Notes          string
	CreatedBy      int64
}

// AuthService implements the staff authentication gate: the one-time owner
// bootstrap, credential verification, and session token lifecycle.
type AuthService interface {
	// OwnerExists reports whether the bootstrap owner account exists.
	OwnerExists(ctx context.Context) (bool, error)
	// SetupOwner performs the one-time owner creation. Permanently refused
	// with ErrOwnerAlreadyExists once any owner exists.
	SetupOwner(ctx context.Context, in OwnerSetupInput) (models.User, error)
	// Login verifies the credentials and returns the authenticated user.
	Login(ctx context.Context, username, password string) (models.User, error)
	// CreateSession issues a signed session token for the user.
	CreateSession(ctx context.Context, user models.User) (string, error)
	// ParseSession validates a session token and restores the identity.
	ParseSession(ctx context.Context, tokenString string) (models.Identity, error)
}

// InvoiceService implements invoice creation from raw form input and
// read-side lookups. Invoices are write-once; there is no update or delete.
type InvoiceService interface {
	// CreateInvoice parses the raw item text, computes the total, and
	// persists the invoice with a fresh view token.
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (models.Invoice, error)
	// GetInvoiceByID returns the invoice for the internal staff identifier.
	GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error)
	// GetInvoiceByToken returns the invoice for a public view token.
	GetInvoiceByToken(ctx context.Context, token string) (models.Invoice, error)
	// ListRecent returns bounded most-recent-first invoice summaries.
	ListRecent(ctx context.Context) ([]models.Invoice, error)
}
