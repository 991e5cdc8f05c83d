// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-invoice-maker/internal/items"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/pdf"
	"github.com/MKhiriev/go-invoice-maker/internal/service"
	"github.com/MKhiriev/go-invoice-maker/internal/store"
	"github.com/MKhiriev/go-invoice-maker/internal/utils"
	"github.com/MKhiriev/go-invoice-maker/models"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	invoices, err := h.services.InvoiceService.ListRecent(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	rows := make([]invoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, invoiceRow{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			ClientName:    inv.ClientName,
			ClientEmail:   inv.ClientEmail,
			Total:         pdf.FormatMoney(inv.TotalAmount, inv.Currency),
			CreatedAt:     displayDate(inv.CreatedAt),
		})
	}

	h.renderPage(w, r, http.StatusOK, "dashboard.html", dashboardView{
		baseView: baseView{Username: identity.Username},
		Invoices: rows,
	})
}

func (h *Handler) newInvoiceForm(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	h.renderPage(w, r, http.StatusOK, "new.html", newInvoiceView{
		baseView: baseView{Username: identity.Username},
		Form:     defaultInvoiceForm(time.Now()),
	})
}

func (h *Handler) newInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	form := invoiceForm{
		InvoiceNumber:  r.PostFormValue("invoice_number"),
		ClientName:     r.PostFormValue("client_name"),
		ClientEmail:    r.PostFormValue("client_email"),
		ClientAddress:  r.PostFormValue("client_address"),
		IssueDate:      r.PostFormValue("issue_date"),
		DueDate:        r.PostFormValue("due_date"),
		Currency:       r.PostFormValue("currency"),
		Items:          r.PostFormValue("items"),
		PaymentMethods: r.PostFormValue("payment_methods"),
		Notes:          r.PostFormValue("notes"),
	}

	invoice, err := h.services.InvoiceService.CreateInvoice(ctx, service.CreateInvoiceInput{
		InvoiceNumber:  form.InvoiceNumber,
		ClientName:     form.ClientName,
		ClientEmail:    form.ClientEmail,
		ClientAddress:  form.ClientAddress,
		IssueDate:      form.IssueDate,
		DueDate:        form.DueDate,
		Currency:       form.Currency,
		ItemsRaw:       form.Items,
		PaymentMethods: form.PaymentMethods,
		Notes:          form.Notes,
		CreatedBy:      identity.UserID,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingRequiredFields) || errors.Is(err, items.ErrNoItems) {
			h.renderPage(w, r, http.StatusBadRequest, "new.html", newInvoiceView{
				baseView: baseView{Username: identity.Username},
				Error:    err.Error(),
				Form:     form,
			})
			return
		}
		h.serverError(w, r, err)
		return
	}

	log.Info().Int64("id", invoice.ID).Str("invoice_number", invoice.InvoiceNumber).Msg("invoice created")
	http.Redirect(w, r, fmt.Sprintf("/created/%d", invoice.ID), http.StatusFound)
}

func (h *Handler) created(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	invoice, err := h.services.InvoiceService.GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrInvoiceNotFound) {
			http.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	clientLink := baseURL(r) + "/view/" + invoice.ViewToken
	total := pdf.FormatMoney(invoice.TotalAmount, invoice.Currency)

	h.renderPage(w, r, http.StatusOK, "created.html", createdView{
		baseView:      baseView{Username: identity.Username},
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    invoice.ClientName,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Total:         total,
		ClientLink:    clientLink,
		MailtoLink:    mailtoLink(invoice, clientLink, total),
	})
}

func (h *Handler) invoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	invoice, err := h.services.InvoiceService.GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrInvoiceNotFound) {
			http.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.servePDF(w, r, invoice)
}

// publicView renders the client-facing invoice page. The view token is the
// only credential; an unknown token is indistinguishable from a missing page.
func (h *Handler) publicView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := chi.URLParam(r, "token")
	invoice, err := h.services.InvoiceService.GetInvoiceByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrInvoiceNotFound) {
			http.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	itemViews := make([]itemView, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		itemViews = append(itemViews, itemView{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   pdf.FormatMoney(item.UnitPrice, invoice.Currency),
			LineTotal:   pdf.FormatMoney(item.LineTotal(), invoice.Currency),
		})
	}

	h.renderPage(w, r, http.StatusOK, "view.html", publicInvoiceView{
		InvoiceNumber:  invoice.InvoiceNumber,
		ClientName:     invoice.ClientName,
		ClientAddress:  invoice.ClientAddress,
		IssueDate:      invoice.IssueDate,
		DueDate:        invoice.DueDate,
		Items:          itemViews,
		Total:          pdf.FormatMoney(invoice.TotalAmount, invoice.Currency),
		PaymentMethods: invoice.PaymentMethods,
		Notes:          invoice.Notes,
		PDFLink:        "/view/" + invoice.ViewToken + "/pdf",
	})
}

func (h *Handler) publicPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := chi.URLParam(r, "token")
	invoice, err := h.services.InvoiceService.GetInvoiceByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrInvoiceNotFound) {
			http.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.servePDF(w, r, invoice)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) servePDF(w http.ResponseWriter, r *http.Request, invoice models.Invoice) {
	document, err := h.renderer.Render(invoice)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoice.InvoiceNumber+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	_, _ = w.Write(document)
}

// defaultInvoiceForm pre-fills the creation form: a fresh invoice number
// derived from the current date, today as the issue date, and a due date two
// weeks out.
func defaultInvoiceForm(now time.Time) invoiceForm {
	ts := strconv.FormatInt(now.Unix(), 10)
	return invoiceForm{
		InvoiceNumber: "INV-" + now.Format("20060102") + "-" + ts[len(ts)-5:],
		IssueDate:     now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 14).Format("2006-01-02"),
		Currency:      "USD",
	}
}

// baseURL reconstructs the externally visible origin of the request,
// honouring X-Forwarded-Proto when the service sits behind a TLS-terminating
// proxy.
func baseURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}

// mailtoLink builds a mailto URL pre-filled with the invoice summary and the
// public view link. Spaces are encoded as %20 because many mail clients do
// not decode "+" inside mailto bodies.
func mailtoLink(invoice models.Invoice, clientLink, total string) string {
	subject := "Invoice " + invoice.InvoiceNumber
	body := fmt.Sprintf("Hello %s,\n\nPlease find your invoice %s for %s here:\n%s\n\nDue date: %s\n\nThank you.",
		invoice.ClientName, invoice.InvoiceNumber, total, clientLink, invoice.DueDate)

	return "mailto:" + invoice.ClientEmail +
		"?subject=" + mailtoEscape(subject) +
		"&body=" + mailtoEscape(body)
}

func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// displayDate trims a stored RFC 3339 timestamp down to its date part.
func displayDate(createdAt string) string {
	date, _, _ := strings.Cut(createdAt, "T")
	return date
}
