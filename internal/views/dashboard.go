package views

import (
	"io"
	"strings"
	"text/tabwriter"

	"finance-dashboard/internal/models"
)

// RenderDashboard writes the home page: greeting, net worth, the balance
// sheet and the account list.
func RenderDashboard(w io.Writer, dashboard *models.Dashboard) error {
	p := &pageWriter{w: w}

	greeting := "Welcome back"
	if dashboard.User != nil && dashboard.User.FirstName != "" {
		greeting += ", " + dashboard.User.FirstName
	}
	p.heading(greeting, "Here's what's happening with your finances")

	netWorth := dashboard.NetWorth
	p.println("Net Worth")
	p.printf("  %s\n", Currency(netWorth.Current))
	p.printf("  %s this month\n", SignedPercent(netWorth.Change))
	if len(netWorth.ChartData) > 0 {
		labels := make([]string, 0, len(netWorth.ChartData))
		for _, point := range netWorth.ChartData {
			labels = append(labels, point.Date+" "+Currency(point.Value))
		}
		p.printf("  %s\n", strings.Join(labels, " | "))
	}
	p.println()

	sheet := dashboard.BalanceSheet
	p.printf("Assets: %s   Liabilities: %s   Net Worth: %s\n\n",
		Currency(sheet.Assets), Currency(sheet.Liabilities), Currency(sheet.NetWorth))

	p.println("Recent Accounts")
	if p.err != nil {
		return p.err
	}
	if len(dashboard.Accounts) == 0 {
		p.println("  No accounts yet")
		return p.err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	tp := &pageWriter{w: tw}
	for i := range dashboard.Accounts {
		account := &dashboard.Accounts[i]
		tp.printf("  %s\t%s\t%s\n", account.Name, account.Type, Currency(account.DisplayBalance()))
	}
	if tp.err != nil {
		return tp.err
	}
	return tw.Flush()
}
