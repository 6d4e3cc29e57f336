package models

import "github.com/shopspring/decimal"

// Money crosses the wire as a JSON number, not a quoted string.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
