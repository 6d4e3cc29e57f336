// Package views renders the finance pages as plain text for the terminal.
package views

import (
	"fmt"
	"io"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const shortDateLayout = "Jan 2, 2006"

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats d as a grouped dollar amount with at most two decimals,
// e.g. "$5,420" or "-$3,420.5".
func Currency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + printer.Sprint(number.Decimal(d.Abs().InexactFloat64(), number.MaxFractionDigits(2)))
}

// Amount formats d with exactly two decimals and no grouping, e.g. "$125.43"
func Amount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + d.Abs().StringFixed(2)
}

// SignedAmount formats a transaction amount: inflows get a leading "+",
// outflows are shown without sign.
func SignedAmount(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+$" + d.StringFixed(2)
	}
	return "$" + d.Abs().StringFixed(2)
}

// ShortDate formats d as "Oct 25, 2025"
func ShortDate(d models.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format(shortDateLayout)
}

// SignedPercent formats a percentage change with an explicit sign, e.g. "+2.3%"
func SignedPercent(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.String() + "%"
	}
	return "+" + d.String() + "%"
}

// ShareOf returns part/whole*100 with one decimal, "0.0" when whole is zero
func ShareOf(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return "0.0"
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).StringFixed(1)
}

// pageWriter keeps the first write error so renderers can print line by line.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *pageWriter) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *pageWriter) heading(title, subtitle string) {
	p.println(title)
	if subtitle != "" {
		p.println(subtitle)
	}
	p.println()
}
