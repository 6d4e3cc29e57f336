package views

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
)

const allCategories = "All"

// CategoryFilters lists the filter choices with the active one bracketed
func CategoryFilters(active string) string {
	choices := append([]string{allCategories}, models.AllCategories()...)
	if active == "" {
		active = allCategories
	}

	for i, choice := range choices {
		if choice == active {
			choices[i] = "[" + choice + "]"
		}
	}
	return strings.Join(choices, "  ")
}

// PageSummary describes which slice of the listing a page holds,
// e.g. "Showing 21 to 40 of 57 transactions".
func PageSummary(page dto.PaginatedResponse[models.Transaction]) string {
	if len(page.Data) == 0 {
		return fmt.Sprintf("Showing 0 of %d transactions", page.Total)
	}

	first := 1
	if page.Page > 1 && page.PerPage > 0 {
		first = (page.Page-1)*page.PerPage + 1
	}
	last := first + len(page.Data) - 1
	return fmt.Sprintf("Showing %d to %d of %d transactions", first, last, page.Total)
}

// RenderTransactions writes one page of the transaction table
func RenderTransactions(w io.Writer, page dto.PaginatedResponse[models.Transaction], category string) error {
	p := &pageWriter{w: w}
	p.heading("Transactions", "Track all your financial transactions")
	p.println(CategoryFilters(category))
	p.println()
	if p.err != nil {
		return p.err
	}

	if len(page.Data) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		tp := &pageWriter{w: tw}
		tp.printf("DATE\tMERCHANT\tCATEGORY\tACCOUNT\tAMOUNT\n")
		for i := range page.Data {
			t := &page.Data[i]
			tp.printf("%s\t%s\t%s\t%s\t%s\n", ShortDate(t.Date), t.Merchant, t.Category, t.Account, SignedAmount(t.Amount))
		}
		if tp.err != nil {
			return tp.err
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		p.println()
	}

	p.println(PageSummary(page))
	if page.TotalPages > 1 {
		p.printf("Page %d of %d\n", page.Page, page.TotalPages)
	}
	return p.err
}
