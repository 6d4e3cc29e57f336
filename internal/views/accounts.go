package views

import (
	"io"
	"text/tabwriter"

	"finance-dashboard/internal/models"
)

var sectionTitles = map[models.AccountType]string{
	models.AccountTypeDepository: "Bank Accounts",
	models.AccountTypeInvestment: "Investments",
	models.AccountTypeCredit:     "Credit Cards",
	models.AccountTypeLoan:       "Loans",
	models.AccountTypeProperty:   "Property",
	models.AccountTypeVehicle:    "Vehicles",
	models.AccountTypeCrypto:     "Crypto",
}

// GroupAccounts buckets accounts by type, keeping their order within a type
func GroupAccounts(accounts []models.Account) map[models.AccountType][]models.Account {
	groups := make(map[models.AccountType][]models.Account)
	for _, account := range accounts {
		groups[account.Type] = append(groups[account.Type], account)
	}
	return groups
}

// RenderAccounts writes one section per account type that has accounts.
// Bank accounts, investments, credit cards and loans always get a section.
func RenderAccounts(w io.Writer, accounts []models.Account) error {
	p := &pageWriter{w: w}
	p.heading("Accounts", "Manage all your financial accounts")

	groups := GroupAccounts(accounts)
	for _, accountType := range models.AllAccountTypes() {
		group := groups[accountType]
		if len(group) == 0 && !alwaysShown(accountType) {
			continue
		}

		p.println(sectionTitles[accountType])
		if p.err != nil {
			return p.err
		}
		if len(group) == 0 {
			p.println("  None")
			p.println()
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		tp := &pageWriter{w: tw}
		for i := range group {
			account := &group[i]
			tp.printf("  %s\t%s\t%s\t%s\n", account.Name, account.Institution, account.AccountNumber, Currency(account.DisplayBalance()))
		}
		if tp.err != nil {
			return tp.err
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		p.println()
	}

	return p.err
}

// RenderAccount writes the detail card of a single account
func RenderAccount(w io.Writer, account *models.Account) error {
	p := &pageWriter{w: w}
	p.println(account.Name)
	p.printf("  Institution: %s\n", account.Institution)
	p.printf("  Number:      %s\n", account.AccountNumber)
	p.printf("  Type:        %s\n", sectionTitles[account.Type])
	p.printf("  Balance:     %s\n", Currency(account.Balance))
	if account.Currency != "" {
		p.printf("  Currency:    %s\n", account.Currency)
	}
	return p.err
}

func alwaysShown(accountType models.AccountType) bool {
	switch accountType {
	case models.AccountTypeDepository, models.AccountTypeInvestment, models.AccountTypeCredit, models.AccountTypeLoan:
		return true
	}
	return false
}
