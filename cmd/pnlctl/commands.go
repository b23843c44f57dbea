package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type userCmd struct{}

func (*userCmd) Name() string     { return "user" }
func (*userCmd) Synopsis() string { return "manage tracker users" }
func (*userCmd) Usage() string {
	return `pnlctl user add -email <email> -name <name> [-auto]

  Creates a user and prints its session token. Send the token as
  "Authorization: Bearer <token>" to the API.
`
}

func (*userCmd) SetFlags(*flag.FlagSet) {}

func (*userCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cdr := subcommands.NewCommander(f, "pnlctl user")
	cdr.Register(&userAddCmd{}, "")
	return cdr.Execute(ctx, args...)
}

type userAddCmd struct {
	email string
	name  string
	auto  bool
}

func (*userAddCmd) Name() string     { return "add" }
func (*userAddCmd) Synopsis() string { return "create a user and print its session token" }
func (*userAddCmd) Usage() string {
	return "pnlctl user add -email <email> -name <name> [-auto]\n"
}

func (c *userAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address of the user.")
	f.StringVar(&c.name, "name", "", "Display name of the user.")
	f.BoolVar(&c.auto, "auto", false, "Enable the daily automatic snapshot from stored exchange API keys.")
}

func (c *userAddCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	user, err := a.users.CreateUser(ctx, c.email, c.name, c.auto)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("user_id: %s\ntoken:   %s\n", user.UserID, user.SessionToken)
	return subcommands.ExitSuccess
}

type seedCmd struct {
	user string
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "create the default exchanges and KPI targets for a user" }
func (*seedCmd) Usage() string {
	return `pnlctl seed -user <user_id>

  Seeds exchanges and KPI targets from the defaults file. Kinds the user
  already has are left untouched.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User ID.")
}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	cfg, err := a.config.EnsureDefaults(ctx, c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d exchanges, %d KPI targets\n", len(cfg.Exchanges), len(cfg.KPIs))
	return subcommands.ExitSuccess
}

type statsCmd struct {
	user string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "print portfolio statistics as JSON" }
func (*statsCmd) Usage() string {
	return "pnlctl stats -user <user_id>\n"
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User ID.")
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	stats, err := a.portfolio.GetStats(ctx, c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	user   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the entry history as CSV" }
func (*exportCmd) Usage() string {
	return "pnlctl export -user <user_id> [-o <file>]\n"
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User ID.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := a.portfolio.ExportCSV(ctx, c.user, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
