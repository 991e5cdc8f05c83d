// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-invoice-maker/models"
)

// qb is the shared statement builder. SQLite uses "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var invoiceColumns = []string{
	"id", "invoice_number", "client_name", "client_email", "client_address",
	"issue_date", "due_date", "currency", "items_json",
	"payment_methods", "notes", "total_amount",
	"created_by_user_id", "view_token", "created_at",
}

var invoiceSummaryColumns = []string{
	"id", "invoice_number", "client_name", "client_email",
	"total_amount", "currency", "created_at", "view_token",
}

func buildCreateUser(user models.User) (string, []any, error) {
	return qb.Insert(user.TableName()).
		Columns("username", "password_hash", "role", "created_at").
		Values(user.Username, user.PasswordHash, user.Role, user.CreatedAt).
		ToSql()
}

func buildFindUserByUsername(username string) (string, []any, error) {
	return qb.Select("id", "username", "password_hash", "role", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildOwnerExists() (string, []any, error) {
	return qb.Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{"role": models.RoleOwner}).
		Limit(1).
		ToSql()
}

func buildCreateInvoice(invoice models.Invoice, itemsJSON string) (string, []any, error) {
	return qb.Insert(invoice.TableName()).
		Columns(
			"invoice_number", "client_name", "client_email", "client_address",
			"issue_date", "due_date", "currency", "items_json",
			"payment_methods", "notes", "total_amount",
			"created_by_user_id", "view_token", "created_at",
		).
		Values(
			invoice.InvoiceNumber, invoice.ClientName, invoice.ClientEmail, invoice.ClientAddress,
			invoice.IssueDate, invoice.DueDate, invoice.Currency, itemsJSON,
			invoice.PaymentMethods, invoice.Notes, invoice.TotalAmount.String(),
			invoice.CreatedBy, invoice.ViewToken, invoice.CreatedAt,
		).
		ToSql()
}

func buildGetInvoice(where sq.Eq) (string, []any, error) {
	return qb.Select(invoiceColumns...).
		From(models.Invoice{}.TableName()).
		Where(where).
		ToSql()
}

func buildListRecentInvoices(limit uint64) (string, []any, error) {
	return qb.Select(invoiceSummaryColumns...).
		From(models.Invoice{}.TableName()).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}
