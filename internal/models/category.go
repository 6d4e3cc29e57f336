package models

// Standard transaction categories. Categories are free-form; these are the
// ones the demo data and the generator use.
const (
	CategoryGroceries      = "Groceries"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryIncome         = "Income"
	CategoryEntertainment  = "Entertainment"
	CategoryFoodAndDrink   = "Food & Drink"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryTravel         = "Travel"
)

// AllCategories returns the categories offered as transaction filters, in display order
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryTransportation,
		CategoryShopping,
		CategoryIncome,
		CategoryEntertainment,
		CategoryFoodAndDrink,
	}
}

// IsStandardCategory reports whether category is one of the standard categories
func IsStandardCategory(category string) bool {
	switch category {
	case CategoryGroceries, CategoryTransportation, CategoryShopping, CategoryIncome,
		CategoryEntertainment, CategoryFoodAndDrink, CategoryBillsUtilities,
		CategoryHealthcare, CategoryTravel:
		return true
	}
	return false
}

// MerchantInfo is a merchant known to the transaction generator
type MerchantInfo struct {
	Name     string
	Category string
}
