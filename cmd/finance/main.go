// Command finance prints the finance dashboard pages from a running API.
//
// Usage:
//
//	finance [flags] dashboard|accounts|account <id>|transactions|budgets|overview
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"finance-dashboard/internal/client"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/views"

	"golang.org/x/sync/errgroup"
)

var errUsage = errors.New("usage: finance [flags] dashboard|accounts|account <id>|transactions|budgets|overview")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds what every command needs: a client, per-request options and the
// output stream.
type cli struct {
	api  *client.Client
	opts []client.RequestOption
	out  io.Writer
}

func run(ctx context.Context, args []string, out io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("finance", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	baseURL := fs.String("url", "", "API base URL (default $FINANCE_API_URL or "+config.DefaultAPIURL+")")
	token := fs.String("token", "", "bearer token sent with every request")
	category := fs.String("category", "", "transaction category filter")
	page := fs.Int("page", 0, "transaction page")
	perPage := fs.Int("per-page", 0, "transactions per page")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg := config.LoadClientConfig()
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}

	c := &cli{
		api: client.NewFromConfig(cfg, client.WithLogger(logger)),
		out: out,
	}
	if *token != "" {
		c.opts = append(c.opts, client.WithToken(*token))
	}

	query := &dto.TransactionQuery{Category: *category, Page: *page, PerPage: *perPage}

	switch cmd := fs.Arg(0); cmd {
	case "dashboard":
		return c.dashboard(ctx)
	case "accounts":
		return c.accounts(ctx)
	case "account":
		if fs.NArg() < 2 {
			return fmt.Errorf("%w: account needs an id", errUsage)
		}
		id, err := strconv.ParseInt(fs.Arg(1), 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid account id %q", fs.Arg(1))
		}
		return c.account(ctx, id)
	case "transactions":
		return c.transactions(ctx, query)
	case "budgets":
		return c.budgets(ctx)
	case "overview":
		return c.overview(ctx, query)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) dashboard(ctx context.Context) error {
	resp, err := c.api.GetDashboard(ctx, c.opts...)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}
	return views.RenderDashboard(c.out, &resp.Data)
}

func (c *cli) accounts(ctx context.Context) error {
	resp, err := c.api.GetAccounts(ctx, c.opts...)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	return views.RenderAccounts(c.out, resp.Data)
}

func (c *cli) account(ctx context.Context, id int64) error {
	resp, err := c.api.GetAccount(ctx, id, c.opts...)
	if err != nil {
		return fmt.Errorf("failed to load account %d: %w", id, err)
	}
	return views.RenderAccount(c.out, &resp.Data)
}

func (c *cli) transactions(ctx context.Context, query *dto.TransactionQuery) error {
	page, err := c.api.GetTransactions(ctx, query, c.opts...)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	return views.RenderTransactions(c.out, page, query.Category)
}

func (c *cli) budgets(ctx context.Context) error {
	resp, err := c.api.GetBudgets(ctx, c.opts...)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}
	return views.RenderBudgets(c.out, resp.Data)
}

// overview fetches all four pages concurrently and prints them in order.
// The first failed fetch cancels the others.
func (c *cli) overview(ctx context.Context, query *dto.TransactionQuery) error {
	var (
		dashboard    dto.APIResponse[models.Dashboard]
		accounts     dto.APIResponse[[]models.Account]
		transactions dto.PaginatedResponse[models.Transaction]
		budgets      dto.APIResponse[[]models.Budget]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dashboard, err = c.api.GetDashboard(gctx, c.opts...)
		return wrapFetch("dashboard", err)
	})
	g.Go(func() (err error) {
		accounts, err = c.api.GetAccounts(gctx, c.opts...)
		return wrapFetch("accounts", err)
	})
	g.Go(func() (err error) {
		transactions, err = c.api.GetTransactions(gctx, query, c.opts...)
		return wrapFetch("transactions", err)
	})
	g.Go(func() (err error) {
		budgets, err = c.api.GetBudgets(gctx, c.opts...)
		return wrapFetch("budgets", err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	renders := []func() error{
		func() error { return views.RenderDashboard(c.out, &dashboard.Data) },
		func() error { return views.RenderAccounts(c.out, accounts.Data) },
		func() error { return views.RenderTransactions(c.out, transactions, query.Category) },
		func() error { return views.RenderBudgets(c.out, budgets.Data) },
	}
	for i, render := range renders {
		if i > 0 {
			if _, err := fmt.Fprintln(c.out); err != nil {
				return err
			}
		}
		if err := render(); err != nil {
			return err
		}
	}
	return nil
}

func wrapFetch(page string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", page, err)
	}
	return nil
}
