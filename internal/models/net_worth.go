package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSheet totals assets against liabilities. NetWorth is carried as
// reported and is not checked against Assets - Liabilities.
type BalanceSheet struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"netWorth"`
	Date        *Date           `json:"date,omitempty"`
}

// ChartPoint is one labelled value of the net worth chart
type ChartPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// NetWorthData is the current net worth, its change since the previous
// point as a signed percentage, and the chart history in caller order.
type NetWorthData struct {
	Current   decimal.Decimal `json:"current"`
	Change    decimal.Decimal `json:"change"`
	ChartData []ChartPoint    `json:"chartData"`
}

// NetWorthSnapshot is a persisted point of the net worth history
type NetWorthSnapshot struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      Date            `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ChartLabel is the short month label used on the chart
func (s *NetWorthSnapshot) ChartLabel() string {
	return s.Date.Format("Jan")
}

// Dashboard is the aggregate shown on the home page
type Dashboard struct {
	User         *User        `json:"user,omitempty"`
	NetWorth     NetWorthData `json:"netWorth"`
	BalanceSheet BalanceSheet `json:"balanceSheet"`
	Accounts     []Account    `json:"accounts"`
}

// NewBalanceSheet sums positive balances into assets and the magnitude of
// negative balances into liabilities.
func NewBalanceSheet(accounts []Account, asOf *Date) BalanceSheet {
	assets := decimal.Zero
	liabilities := decimal.Zero

	for i := range accounts {
		balance := accounts[i].Balance
		if balance.IsNegative() {
			liabilities = liabilities.Add(balance.Abs())
		} else {
			assets = assets.Add(balance)
		}
	}

	return BalanceSheet{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
		Date:        asOf,
	}
}

// NewNetWorthData builds chart data from snapshots ordered oldest first.
// Current is the latest value and Change the percentage move from the point
// before it, rounded to one decimal place.
func NewNetWorthData(snapshots []NetWorthSnapshot) NetWorthData {
	data := NetWorthData{
		Current:   decimal.Zero,
		Change:    decimal.Zero,
		ChartData: make([]ChartPoint, 0, len(snapshots)),
	}

	for i := range snapshots {
		data.ChartData = append(data.ChartData, ChartPoint{
			Date:  snapshots[i].ChartLabel(),
			Value: snapshots[i].Value,
		})
	}

	if n := len(snapshots); n > 0 {
		data.Current = snapshots[n-1].Value
		if n > 1 {
			data.Change = PercentChange(snapshots[n-2].Value, snapshots[n-1].Value)
		}
	}

	return data
}

// PercentChange is (to - from) / |from| * 100 rounded to one decimal place
func PercentChange(from, to decimal.Decimal) decimal.Decimal {
	if from.IsZero() {
		return decimal.Zero
	}
	return to.Sub(from).Div(from.Abs()).Mul(hundred).Round(1)
}
