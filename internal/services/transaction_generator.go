package services

import (
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	merchantPool []models.MerchantInfo
	faker        *gofakeit.Faker
	employer     string
}

const (
	hoursInDay        = 24
	biWeeklyDays      = 14
	maxDailyPurchases = 3
	refundRate        = 0.05
	noteRate          = 0.1
)

var (
	salaryAmounts = []float64{2500.00, 3000.00, 3500.00, 4000.00, 5000.00}

	billMerchants = []models.MerchantInfo{
		{Name: "Electric Company", Category: models.CategoryBillsUtilities},
		{Name: "Internet Provider", Category: models.CategoryBillsUtilities},
		{Name: "Water Department", Category: models.CategoryBillsUtilities},
		{Name: "Phone Bill", Category: models.CategoryBillsUtilities},
	}
)

// NewTransactionGenerator creates a generator. A zero seed picks a random one.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	faker := gofakeit.New(seed)
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        faker,
		employer:     faker.Company(),
	}
}

func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		{Name: "Whole Foods", Category: models.CategoryGroceries},
		{Name: "Trader Joe's", Category: models.CategoryGroceries},
		{Name: "Kroger", Category: models.CategoryGroceries},
		{Name: "Costco Wholesale", Category: models.CategoryGroceries},
		{Name: "Safeway", Category: models.CategoryGroceries},

		{Name: "Starbucks", Category: models.CategoryFoodAndDrink},
		{Name: "Chipotle Mexican Grill", Category: models.CategoryFoodAndDrink},
		{Name: "Panera Bread", Category: models.CategoryFoodAndDrink},
		{Name: "Dunkin'", Category: models.CategoryFoodAndDrink},
		{Name: "Olive Garden", Category: models.CategoryFoodAndDrink},

		{Name: "Shell Gas Station", Category: models.CategoryTransportation},
		{Name: "Chevron", Category: models.CategoryTransportation},
		{Name: "Uber", Category: models.CategoryTransportation},
		{Name: "Lyft", Category: models.CategoryTransportation},
		{Name: "Metro Transit", Category: models.CategoryTransportation},

		{Name: "Amazon", Category: models.CategoryShopping},
		{Name: "Target", Category: models.CategoryShopping},
		{Name: "Best Buy", Category: models.CategoryShopping},
		{Name: "Home Depot", Category: models.CategoryShopping},
		{Name: "IKEA", Category: models.CategoryShopping},

		{Name: "Netflix", Category: models.CategoryEntertainment},
		{Name: "Spotify", Category: models.CategoryEntertainment},
		{Name: "AMC Theaters", Category: models.CategoryEntertainment},
		{Name: "Disney+", Category: models.CategoryEntertainment},

		{Name: "CVS Pharmacy", Category: models.CategoryHealthcare},
		{Name: "Walgreens", Category: models.CategoryHealthcare},

		{Name: "Delta Air Lines", Category: models.CategoryTravel},
		{Name: "Marriott Hotels", Category: models.CategoryTravel},
	}
}

// GetMerchantPool returns the merchant pool
func (g *transactionGenerator) GetMerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *transactionGenerator) SelectRandomMerchant() models.MerchantInfo {
	return g.merchantPool[g.faker.Number(0, len(g.merchantPool)-1)]
}

// GenerateAmount generates a positive amount in the usual range for category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := amountRange(category)
	return decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)
}

func amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:      {15.00, 250.00},
		models.CategoryFoodAndDrink:   {4.00, 80.00},
		models.CategoryTransportation: {10.00, 80.00},
		models.CategoryShopping:       {25.00, 450.00},
		models.CategoryEntertainment:  {8.00, 60.00},
		models.CategoryBillsUtilities: {50.00, 250.00},
		models.CategoryHealthcare:     {10.00, 150.00},
		models.CategoryTravel:         {100.00, 800.00},
		models.CategoryIncome:         {2000.00, 8000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateDate returns a random date in [startDate, endDate)
func (g *transactionGenerator) GenerateDate(startDate, endDate time.Time) models.Date {
	if !endDate.After(startDate) {
		return models.NewDate(startDate.Year(), startDate.Month(), startDate.Day())
	}
	t := g.faker.DateRange(startDate, endDate.Add(-time.Nanosecond))
	return models.NewDate(t.Year(), t.Month(), t.Day())
}

// GenerateHistory combines salary, bills and daily purchases for the
// account, newest first
func (g *transactionGenerator) GenerateHistory(account *models.Account, startDate, endDate time.Time) []models.Transaction {
	transactions := g.GenerateSalaryTransactions(account, startDate, endDate)
	transactions = append(transactions, g.GenerateBillTransactions(account, startDate, endDate)...)
	transactions = append(transactions, g.GenerateDailyPurchases(account, startDate, endDate)...)

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date.Time)
	})
	return transactions
}

// GenerateSalaryTransactions generates bi-weekly salary deposits
func (g *transactionGenerator) GenerateSalaryTransactions(account *models.Account, startDate, endDate time.Time) []models.Transaction {
	salary := decimal.NewFromFloat(salaryAmounts[g.faker.Number(0, len(salaryAmounts)-1)])

	transactions := make([]models.Transaction, 0)
	for current := startDate.Add(biWeeklyDays * hoursInDay * time.Hour); current.Before(endDate); current = current.Add(biWeeklyDays * hoursInDay * time.Hour) {
		transactions = append(transactions, g.newTransaction(account, current, "Salary Deposit", models.CategoryIncome, salary, "salary"))
	}

	return transactions
}

// GenerateBillTransactions generates one payment per bill merchant each month
func (g *transactionGenerator) GenerateBillTransactions(account *models.Account, startDate, endDate time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0)

	month := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for ; month.Before(endDate); month = month.AddDate(0, 1, 0) {
		for _, merchant := range billMerchants {
			billDate := month.AddDate(0, 0, g.faker.Number(0, 27))
			if billDate.Before(startDate) || !billDate.Before(endDate) {
				continue
			}
			amount := g.GenerateAmount(merchant.Category).Neg()
			transactions = append(transactions, g.newTransaction(account, billDate, merchant.Name, merchant.Category, amount, "recurring"))
		}
	}

	return transactions
}

// GenerateDailyPurchases generates up to a few purchases per day, with the
// occasional refund
func (g *transactionGenerator) GenerateDailyPurchases(account *models.Account, startDate, endDate time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0)

	for current := startDate; current.Before(endDate); current = current.Add(hoursInDay * time.Hour) {
		purchases := g.faker.Number(0, maxDailyPurchases)
		for i := 0; i < purchases; i++ {
			merchant := g.SelectRandomMerchant()
			amount := g.GenerateAmount(merchant.Category)

			if g.faker.Float64Range(0, 1) < refundRate {
				transactions = append(transactions, g.newTransaction(account, current, merchant.Name, merchant.Category, amount, "refund"))
				continue
			}
			transactions = append(transactions, g.newTransaction(account, current, merchant.Name, merchant.Category, amount.Neg()))
		}
	}

	return transactions
}

func (g *transactionGenerator) newTransaction(account *models.Account, date time.Time, merchant, category string, amount decimal.Decimal, tags ...string) models.Transaction {
	transaction := models.Transaction{
		Date:      models.NewDate(date.Year(), date.Month(), date.Day()),
		Merchant:  merchant,
		Category:  category,
		Amount:    amount,
		Account:   account.Name,
		AccountID: account.ID,
		Tags:      tags,
	}
	if category == models.CategoryIncome {
		transaction.Notes = g.employer
	} else if g.faker.Float64Range(0, 1) < noteRate {
		transaction.Notes = g.faker.Sentence(5)
	}
	return transaction
}
