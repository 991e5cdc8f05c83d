// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-invoice-maker/internal/items"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/store"
	"github.com/MKhiriev/go-invoice-maker/models"
)

// invoiceService is the concrete implementation of InvoiceService. Creation
// runs the full pipeline: parse raw item text, compute the exact total, and
// persist the invoice atomically with a fresh view token.
type invoiceService struct {
	invoiceRepository store.InvoiceRepository
	logger            *logger.Logger
}

// NewInvoiceService constructs an InvoiceService wired to the given
// InvoiceRepository.
func NewInvoiceService(invoiceRepository store.InvoiceRepository, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepository: invoiceRepository,
		logger:            logger,
	}
}

// CreateInvoice validates the form input, parses the item lines, computes
// the total, and persists the invoice.
//
// Returns the stored invoice (with assigned ID and view token) or:
//   - ErrMissingRequiredFields when invoice number, client name, issue date,
//     or due date is blank.
//   - items.ErrNoItems when the item text has no non-blank lines.
//
// The stored TotalAmount equals the sum of all item line totals at this
// moment and is never recomputed afterwards.
func (s *invoiceService) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	invoiceNumber := strings.TrimSpace(in.InvoiceNumber)
	clientName := strings.TrimSpace(in.ClientName)
	issueDate := strings.TrimSpace(in.IssueDate)
	dueDate := strings.TrimSpace(in.DueDate)

	if invoiceNumber == "" || clientName == "" || issueDate == "" || dueDate == "" {
		return models.Invoice{}, ErrMissingRequiredFields
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}

	parsedItems, err := items.Parse(in.ItemsRaw)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice := models.Invoice{
		InvoiceNumber:  invoiceNumber,
		ClientName:     clientName,
		ClientEmail:    strings.TrimSpace(in.ClientEmail),
		ClientAddress:  strings.TrimSpace(in.ClientAddress),
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Currency:       currency,
		Items:          parsedItems,
		PaymentMethods: strings.TrimSpace(in.PaymentMethods),
		Notes:          strings.TrimSpace(in.Notes),
		TotalAmount:    items.Total(parsedItems),
		CreatedBy:      in.CreatedBy,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	createdInvoice, err := s.invoiceRepository.CreateInvoice(ctx, invoice)
	if err != nil {
		log.Err(err).Str("invoice_number", invoiceNumber).Msg("invoice creation ended with error")
		return models.Invoice{}, fmt.Errorf("invoice creation ended with error: %w", err)
	}

	log.Info().
		Int64("id", createdInvoice.ID).
		Str("invoice_number", createdInvoice.InvoiceNumber).
		Int("items", len(createdInvoice.Items)).
		Msg("invoice created")

	return createdInvoice, nil
}

// GetInvoiceByID returns the invoice for the internal staff identifier.
// Unknown IDs surface store.ErrInvoiceNotFound unchanged.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error) {
	return s.invoiceRepository.GetInvoiceByID(ctx, id)
}

// GetInvoiceByToken returns the invoice for a public view token. Unknown
// tokens surface store.ErrInvoiceNotFound unchanged; nothing about existing
// invoices leaks.
func (s *invoiceService) GetInvoiceByToken(ctx context.Context, token string) (models.Invoice, error) {
	return s.invoiceRepository.GetInvoiceByToken(ctx, token)
}

// ListRecent returns the dashboard page: bounded most-recent-first invoice
// summaries.
func (s *invoiceService) ListRecent(ctx context.Context) ([]models.Invoice, error) {
	return s.invoiceRepository.ListRecentInvoices(ctx, 0)
}
