// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/utils"
	"github.com/MKhiriev/go-invoice-maker/models"
)

// maxListLimit bounds the dashboard page size regardless of the requested
// limit.
const maxListLimit = 250

// invoiceRepository is the SQLite-backed implementation of
// [InvoiceRepository]. Invoices are write-once: the repository exposes no
// update or delete path, and items travel inside the invoice row as one
// atomic JSON blob.
type invoiceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInvoiceRepository constructs an [InvoiceRepository] backed by the
// provided database connection and logger.
func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateInvoice persists the invoice atomically. It assigns the internal ID
// and generates the permanent view token from a cryptographically secure
// random source; the token column's unique constraint backstops the
// negligible collision probability.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	token, err := utils.NewViewToken()
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("error generating view token")
		return models.Invoice{}, fmt.Errorf("error generating view token: %w", err)
	}
	invoice.ViewToken = token

	itemsJSON, err := json.Marshal(invoice.Items)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("error serializing items")
		return models.Invoice{}, fmt.Errorf("error serializing items: %w", err)
	}

	query, args, err := buildCreateInvoice(invoice, string(itemsJSON))
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("error building query")
		return models.Invoice{}, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("error inserting invoice")
		return models.Invoice{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	invoiceID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("error getting inserted invoice id")
		return models.Invoice{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	invoice.ID = invoiceID
	return invoice, nil
}

// GetInvoiceByID returns the full invoice for the internal identifier used
// on staff routes.
func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error) {
	return r.getInvoice(ctx, sq.Eq{"id": id})
}

// GetInvoiceByToken returns the full invoice for a public view token. An
// unknown token yields [ErrInvoiceNotFound] with no further detail.
func (r *invoiceRepository) GetInvoiceByToken(ctx context.Context, token string) (models.Invoice, error) {
	return r.getInvoice(ctx, sq.Eq{"view_token": token})
}

func (r *invoiceRepository) getInvoice(ctx context.Context, where sq.Eq) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetInvoice(where)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.getInvoice").Msg("error building query")
		return models.Invoice{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var invoice models.Invoice
	var clientEmail, clientAddress, paymentMethods, notes, viewToken sql.NullString
	var createdBy sql.NullInt64
	var itemsJSON, totalAmount string

	err = row.Scan(
		&invoice.ID, &invoice.InvoiceNumber, &invoice.ClientName, &clientEmail, &clientAddress,
		&invoice.IssueDate, &invoice.DueDate, &invoice.Currency, &itemsJSON,
		&paymentMethods, &notes, &totalAmount,
		&createdBy, &viewToken, &invoice.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, ErrInvoiceNotFound
		}

		log.Err(err).Str("func", "*invoiceRepository.getInvoice").Msg("error: scanning error")
		return models.Invoice{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// optional columns deserialize to explicit defaults, never to lookup
	// failures at call sites
	invoice.ClientEmail = clientEmail.String
	invoice.ClientAddress = clientAddress.String
	invoice.PaymentMethods = paymentMethods.String
	invoice.Notes = notes.String
	invoice.ViewToken = viewToken.String
	invoice.CreatedBy = createdBy.Int64

	if invoice.TotalAmount, err = parseStoredAmount(totalAmount); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.getInvoice").Msg("error parsing stored total")
		return models.Invoice{}, fmt.Errorf("error parsing stored total: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &invoice.Items); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.getInvoice").Msg("error deserializing items")
		return models.Invoice{}, fmt.Errorf("error deserializing items: %w", err)
	}

	return invoice, nil
}

// ListRecentInvoices returns up to limit invoice summaries ordered most
// recent first. Summaries carry the dashboard columns only; Items is left
// empty.
func (r *invoiceRepository) ListRecentInvoices(ctx context.Context, limit uint64) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)

	if limit == 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	query, args, err := buildListRecentInvoices(limit)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.ListRecentInvoices").Msg("error building query")
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.ListRecentInvoices").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var invoice models.Invoice
		var clientEmail, viewToken sql.NullString
		var totalAmount string

		err := rows.Scan(
			&invoice.ID, &invoice.InvoiceNumber, &invoice.ClientName, &clientEmail,
			&totalAmount, &invoice.Currency, &invoice.CreatedAt, &viewToken,
		)
		if err != nil {
			log.Err(err).Str("func", "*invoiceRepository.ListRecentInvoices").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}

		invoice.ClientEmail = clientEmail.String
		invoice.ViewToken = viewToken.String
		if invoice.TotalAmount, err = parseStoredAmount(totalAmount); err != nil {
			log.Err(err).Str("func", "*invoiceRepository.ListRecentInvoices").Msg("error parsing stored total")
			return nil, fmt.Errorf("error parsing stored total: %w", err)
		}

		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.ListRecentInvoices").Msg("error iterating rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return invoices, nil
}

// parseStoredAmount converts the persisted total into an exact decimal.
// Empty values from pre-migration rows default to zero.
func parseStoredAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}
