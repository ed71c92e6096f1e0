package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"ims-dao/config"
	"ims-dao/internal"
	"ims-dao/internal/domain/accounttype"
	"ims-dao/internal/domain/user"
	"ims-dao/internal/interface/validator"
)

func commands(logger *zap.Logger) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "serve",
			Usage: "run the ops HTTP server (health, metrics)",
			Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
				return app.Serve(c.Context)
			}),
		},
		{
			Name:  "migrate",
			Usage: "database migrations",
			Subcommands: []*cli.Command{
				migrateCommand("up", "apply all pending migrations"),
				migrateCommand("down", "roll back the latest migration"),
				migrateCommand("status", "print applied and pending migrations"),
			},
		},
		{
			Name:  "seed",
			Usage: "create the default account types that are missing",
			Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
				created, err := app.Seed(c.Context)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%d account type(s) created\n", created)
				return nil
			}),
		},
		{
			Name:  "tiers",
			Usage: "inspect account types",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "list active account types by level",
					Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
						ats, err := app.AccountTypes().SelectAllActive(c.Context)
						if err != nil {
							return err
						}
						printAccountTypes(c.App.Writer, ats)
						return nil
					}),
				},
				{
					Name:  "upgrades",
					Usage: "list the account types an account on --id can upgrade to",
					Flags: []cli.Flag{&cli.Int64Flag{Name: "id", Required: true}},
					Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
						ats, err := app.AccountTypes().SelectAllPossibleToUpgrade(c.Context, accounttype.ID(c.Int64("id")))
						if err != nil {
							return err
						}
						printAccountTypes(c.App.Writer, ats)
						return nil
					}),
				},
			},
		},
		{
			Name:  "users",
			Usage: "inspect and register users",
			Subcommands: []*cli.Command{
				{
					Name:  "find",
					Usage: "find one user by --id, --email or --uuid",
					Flags: []cli.Flag{
						&cli.Int64Flag{Name: "id"},
						&cli.StringFlag{Name: "email"},
						&cli.StringFlag{Name: "uuid"},
					},
					Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
						var (
							u   *user.User
							err error
						)
						switch {
						case c.IsSet("id"):
							u, err = app.Users().FindByID(c.Context, user.ID(c.Int64("id")))
						case c.IsSet("email"):
							u, err = app.Users().FindByEmail(c.Context, c.String("email"))
						case c.IsSet("uuid"):
							u, err = app.Users().FindByEmailUUID(c.Context, c.String("uuid"))
						default:
							return fmt.Errorf("one of --id, --email or --uuid is required")
						}
						if err != nil {
							return err
						}
						printUser(c.App.Writer, u)
						return nil
					}),
				},
				{
					Name:  "create",
					Usage: "register a user on an account",
					Flags: []cli.Flag{
						&cli.Int64Flag{Name: "account", Required: true},
						&cli.StringFlag{Name: "first-name"},
						&cli.StringFlag{Name: "last-name"},
						&cli.StringFlag{Name: "email", Required: true},
						&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"IMS_USER_PASSWORD"}},
						&cli.StringFlag{Name: "role", Value: string(user.RoleWorker)},
					},
					Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
						req := user.User{
							AccountID: user.AccountID(c.Int64("account")),
							FirstName: c.String("first-name"),
							LastName:  c.String("last-name"),
							Email:     c.String("email"),
							Password:  c.String("password"),
							Role:      user.Role(c.String("role")),
						}
						if errs := validator.ValidateNewUser(req); errs != nil {
							return fmt.Errorf("invalid user: %v", errs)
						}
						u, err := app.Users().Create(c.Context, req)
						if err != nil {
							return err
						}
						printUser(c.App.Writer, u)
						return nil
					}),
				},
				{
					Name:  "count",
					Usage: "count the users of --account",
					Flags: []cli.Flag{&cli.Int64Flag{Name: "account", Required: true}},
					Action: withApp(logger, func(c *cli.Context, app *internal.App) error {
						n, err := app.Users().CountOfUsers(c.Context, user.AccountID(c.Int64("account")))
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, n)
						return nil
					}),
				},
			},
		},
	}
}

func migrateCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("env-file"))
			if err != nil {
				return err
			}
			return internal.Migrate(c.Context, cfg, name)
		},
	}
}

// withApp loads config and opens the pool for one command, closing it afterwards.
func withApp(logger *zap.Logger, fn func(c *cli.Context, app *internal.App) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load(c.String("env-file"))
		if err != nil {
			return err
		}

		app, err := internal.NewApp(c.Context, logger, cfg)
		if err != nil {
			return fmt.Errorf("init app failed: %w", err)
		}
		defer app.Close()

		return fn(c, app)
	}
}

func printAccountTypes(w io.Writer, ats accounttype.AccountTypes) {
	if len(ats) == 0 {
		fmt.Fprintln(w, "no account types")
		return
	}
	for _, at := range ats {
		fmt.Fprintf(w, "%d\t%s\tlevel=%d\tprice=%s\tusers=%d\twarehouses=%d\n",
			at.ID, at.Name, at.Level, at.Price.StringFixed(2), at.MaxUsers, at.MaxWarehouses)
	}
}

func printUser(w io.Writer, u *user.User) {
	fmt.Fprintf(w, "%d\t%s\t%s %s\trole=%s\taccount=%d\tactive=%t\tuuid=%s\n",
		u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.AccountID, u.Active, u.EmailUUID)
}
