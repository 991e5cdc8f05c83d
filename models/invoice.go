// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Item is a single invoice line. Items are owned by their invoice and are
// persisted inside it as one atomic JSON blob, never as separate rows.
type Item struct {
	// Description is the free-form item text, order-preserved from input.
	Description string `json:"desc"`

	// Quantity is fixed at 1 in the current scope: the item text format has
	// no quantity notation, so none is parsed. Known limitation.
	Quantity int64 `json:"qty"`

	// UnitPrice is the exact decimal price parsed from the item line.
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal returns Quantity × UnitPrice.
func (it Item) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Invoice is the write-once invoice record. Once created it is never updated
// or deleted; TotalAmount is computed at creation time and stored redundantly.
type Invoice struct {
	// ID is the internal invoice identifier used on staff routes.
	ID int64 `json:"-"`

	// InvoiceNumber is free text. Uniqueness is deliberately not enforced.
	InvoiceNumber string `json:"invoice_number"`

	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email,omitempty"`
	ClientAddress string `json:"client_address,omitempty"`

	// IssueDate and DueDate are free-text date strings, stored as entered
	// and never validated as calendar dates.
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`

	// Currency is a 3-letter uppercase code (e.g. "USD").
	Currency string `json:"currency"`

	// Items is the ordered item sequence owned by this invoice.
	Items []Item `json:"items"`

	PaymentMethods string `json:"payment_methods,omitempty"`
	Notes          string `json:"notes,omitempty"`

	// TotalAmount equals the sum of all item line totals at creation time.
	TotalAmount decimal.Decimal `json:"total_amount"`

	// CreatedBy is a weak reference to the creating user by ID.
	CreatedBy int64 `json:"-"`

	// ViewToken is the permanent unguessable credential granting public
	// read and PDF-download access to this invoice. No expiry, no revocation.
	ViewToken string `json:"-"`

	// CreatedAt is the creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}
