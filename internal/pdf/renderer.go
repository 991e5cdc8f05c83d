// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pdf renders invoices as paginated PDF documents.
//
// The layout targets a portrait US Letter page measured in points. Every page
// reserves a footer zone at the bottom; item rows never enter it, so the
// brand footer on the final page never competes with table content.
package pdf

import (
	"bytes"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/MKhiriev/go-invoice-maker/models"
)

// Page geometry in points, top-origin. US Letter is 612×792.
const (
	pageWidth  = 612.0
	pageHeight = 792.0

	leftX  = 50.0  // left edge of all content
	rightX = 560.0 // right edge for right-aligned amounts
	topY   = 60.0  // first baseline on every page

	rowHeight = 14.0

	// footerSpace is the reserved footer zone: an item row whose cursor has
	// come within this distance of the page bottom starts a new page.
	footerSpace = 160.0

	// footerBaseY is the distance from the page bottom to the logo's bottom
	// edge; the separator rule, caption, and link are placed relative to it.
	footerBaseY = 80.0

	logoWidth  = 220.0
	logoHeight = 65.0

	descriptionMaxLen = 80  // item description, characters per row
	addressMaxLen     = 110 // bill-to address, characters per line
)

// Renderer renders invoices into PDF byte buffers. The zero value is not
// usable; construct it with NewRenderer.
type Renderer struct {
	// companyURL is printed and hyperlinked in the footer of every document.
	companyURL string

	// logoFile is the brand image path. When the file is missing the footer
	// renders without the image and no error is raised.
	logoFile string
}

// NewRenderer constructs a Renderer with the given company website URL and
// brand image path.
func NewRenderer(companyURL, logoFile string) *Renderer {
	return &Renderer{
		companyURL: companyURL,
		logoFile:   logoFile,
	}
}

// Render lays out the invoice and returns the finished PDF document.
//
// Layout order: header block, bill-to block, itemized table with pagination,
// bold total line, then the footer on the page where content ended. The
// total line is intentionally exempt from the pagination check; when it
// lands very close to the footer zone it may visually collide. Accepted
// limitation.
func (rd *Renderer) Render(inv models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	currency := strings.ToUpper(inv.Currency)

	y := rd.drawHeader(doc, inv, currency)
	y = rd.drawBillTo(doc, inv, y)
	y = rd.drawItemTable(doc, inv, currency, y)

	// bold total directly below the last row, not pagination-checked
	y += 8
	doc.SetFont("Helvetica", "B", 12)
	drawRightString(doc, rightX, y, "TOTAL: "+FormatMoney(inv.TotalAmount, currency))

	rd.drawFooter(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// drawHeader draws the title, invoice number, and the issue/due/currency line
// at fixed positions from the top margin. Returns the cursor below the block.
func (rd *Renderer) drawHeader(doc *gofpdf.Fpdf, inv models.Invoice, currency string) float64 {
	y := topY
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(leftX, y, "INVOICE")

	y += 26
	doc.SetFont("Helvetica", "", 10)
	doc.Text(leftX, y, "Invoice #: "+inv.InvoiceNumber)
	y += rowHeight
	doc.Text(leftX, y, "Issue: "+inv.IssueDate+"    Due: "+inv.DueDate+"    Currency: "+currency)

	return y
}

// drawBillTo draws the client block: name, optional email, and the optional
// multi-line address with each line truncated to the maximum width.
func (rd *Renderer) drawBillTo(doc *gofpdf.Fpdf, inv models.Invoice, y float64) float64 {
	y += 22
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(leftX, y, "Bill To:")

	y += rowHeight
	doc.SetFont("Helvetica", "", 10)
	doc.Text(leftX, y, inv.ClientName)

	if inv.ClientEmail != "" {
		y += rowHeight
		doc.Text(leftX, y, inv.ClientEmail)
	}

	if inv.ClientAddress != "" {
		for _, line := range strings.Split(inv.ClientAddress, "\n") {
			y += rowHeight
			doc.Text(leftX, y, truncate(strings.TrimRight(line, "\r"), addressMaxLen))
		}
	}

	return y
}

// drawItemTable draws the column headers, the rule, and one row per item.
// Before each row it checks whether the cursor has entered the reserved
// footer zone; if so it finalizes the page and restarts at the top margin,
// so no row is ever drawn partially off-page.
func (rd *Renderer) drawItemTable(doc *gofpdf.Fpdf, inv models.Invoice, currency string, y float64) float64 {
	y += 24
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(leftX, y, "Item")
	drawRightString(doc, rightX, y, "Amount")

	y += 10
	doc.Line(leftX, y, rightX, y)
	y += 16

	doc.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		if y > pageHeight-footerSpace {
			doc.AddPage()
			y = topY
			doc.SetFont("Helvetica", "", 10)
		}

		doc.Text(leftX, y, truncate(item.Description, descriptionMaxLen))
		drawRightString(doc, rightX, y, FormatMoney(item.LineTotal(), currency))
		y += rowHeight
	}

	return y
}

// drawFooter draws the brand footer on the current (final) page: a grey
// separator rule, the centered logo, a caption, and the company URL with a
// clickable hit-region matching the text's visual bounding box.
func (rd *Renderer) drawFooter(doc *gofpdf.Fpdf) {
	ruleY := pageHeight - footerBaseY - 75
	doc.SetDrawColor(191, 191, 191)
	doc.Line(leftX, ruleY, pageWidth-leftX, ruleY)
	doc.SetDrawColor(0, 0, 0)

	// render without the image when the asset is unavailable
	if _, err := os.Stat(rd.logoFile); err == nil {
		logoX := (pageWidth - logoWidth) / 2
		logoY := pageHeight - footerBaseY - logoHeight
		doc.ImageOptions(rd.logoFile, logoX, logoY, logoWidth, logoHeight, false, gofpdf.ImageOptions{}, 0, "")
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(0, 0, 0)
	drawCentredString(doc, pageWidth/2, pageHeight-footerBaseY+10, "Visit our website:")

	doc.SetTextColor(0, 0, 255)
	drawCentredString(doc, pageWidth/2, pageHeight-footerBaseY+25, rd.companyURL)
	doc.LinkString(pageWidth/2-150, pageHeight-footerBaseY+5, 300, 25, rd.companyURL)
	doc.SetTextColor(0, 0, 0)
}

func drawRightString(doc *gofpdf.Fpdf, x, y float64, s string) {
	doc.Text(x-doc.GetStringWidth(s), y, s)
}

func drawCentredString(doc *gofpdf.Fpdf, x, y float64, s string) {
	doc.Text(x-doc.GetStringWidth(s)/2, y, s)
}

// truncate limits s to max runes without splitting a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
