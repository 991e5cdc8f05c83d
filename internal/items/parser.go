// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package items implements the free-text item line parser and the invoice
// total calculator.
//
// The parser is deliberately permissive: data entry is "type anything", one
// item per line, and no individual line is ever rejected. The only hard
// failure is input with no non-blank lines at all.
package items

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-invoice-maker/models"
	"github.com/shopspring/decimal"
)

// numberPattern matches a price candidate inside an item line: an optional
// sign, an optional currency symbol, optional whitespace, digits with
// optional thousands separators, and an optional decimal portion.
var numberPattern = regexp.MustCompile(`[-+]?\$?\s*\d[\d,]*\.?\d*`)

// descriptionCutset holds the separator characters trimmed from both ends of
// a description after the price substring has been removed.
const descriptionCutset = " -:|"

// Parse converts raw multi-line item text into an ordered item sequence.
//
// Each non-blank line becomes exactly one item, in input order; blank lines
// are skipped. The LAST numeric substring on a line is taken as the unit
// price; its first occurrence is removed from the line to form the
// description, which is then trimmed of surrounding separators. A line with
// no numeric substring becomes an item with price 0.00 and the full line as
// description. Quantity is always 1: the line format has no quantity
// notation, so none is parsed.
//
// Returns ErrNoItems when the input contains no non-blank lines. No other
// input can fail.
func Parse(raw string) ([]models.Item, error) {
	var parsed []models.Item

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parsed = append(parsed, parseLine(line))
	}

	if len(parsed) == 0 {
		return nil, ErrNoItems
	}

	return parsed, nil
}

// parseLine converts one non-blank line into an item. It never fails:
// unparseable prices degrade to zero and the description falls back to the
// whole line when stripping the price would leave it empty.
func parseLine(line string) models.Item {
	item := models.Item{
		Description: line,
		Quantity:    1,
		UnitPrice:   decimal.Zero,
	}

	matches := numberPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return item
	}

	last := matches[len(matches)-1]
	item.UnitPrice = parsePrice(last)

	idx := strings.Index(line, last)
	desc := strings.Trim(line[:idx]+line[idx+len(last):], descriptionCutset)
	if desc != "" {
		item.Description = desc
	}

	return item
}

// parsePrice turns a matched numeric substring into an exact decimal value.
// The currency symbol, thousands separators, and surrounding whitespace are
// stripped first. A parse failure degrades to zero rather than failing the
// line.
func parsePrice(match string) decimal.Decimal {
	cleaned := strings.ReplaceAll(match, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	// the pattern admits a trailing lone dot ("120."), which decimal rejects
	cleaned = strings.TrimSuffix(cleaned, ".")

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return price
}

// Total sums quantity × unit price over all items as an exact decimal value.
// No rounding is applied; amounts are formatted to 2 decimal places only at
// render time. An empty slice sums to zero.
func Total(list []models.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range list {
		total = total.Add(item.LineTotal())
	}

	return total
}
