// Command admin manages dashboard accounts directly against the database,
// for bootstrapping and for recovering a locked-out operator.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/irahulsinghrajput/BrandMark/internal/config"
	"github.com/irahulsinghrajput/BrandMark/internal/logging"
	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

// operator stands in for a superadmin caller; shell access to the
// database already implies full control.
var operator = &auth.Principal{ID: "cli", Role: model.RoleSuperAdmin}

func main() {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Manage BrandMark dashboard accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(createCmd(), resetPasswordCmd(), listCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context) (*repository.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.LogLevel)
	if cfg.Database.Driver == config.DriverMongo {
		client, err := repository.NewMongo(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongoStore(client, cfg.Database.MongoDatabase), cfg, nil
	}
	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPgStore(pool), cfg, nil
}

func createCmd() *cobra.Command {
	var email, name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin (the first account becomes superadmin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			in := bufio.NewReader(os.Stdin)
			if email == "" {
				if email, err = prompt(in, "Email: "); err != nil {
					return err
				}
			}
			if name == "" {
				if name, err = prompt(in, "Name: "); err != nil {
					return err
				}
			}
			password, err := readPassword(in, "Password: ")
			if err != nil {
				return err
			}

			tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
			svc := service.NewAdminService(store.Admins, store.Dashboard, tokens, false)
			a, err := svc.Register(ctx, service.RegisterInput{Email: email, Password: password, Name: name}, operator)
			if err != nil {
				return describe(err)
			}
			fmt.Printf("created %s (%s) with role %s\n", a.Email, a.ID, a.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func resetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password EMAIL",
		Short: "Set a new password for an existing admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			a, err := store.Admins.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(args[0])))
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no admin with email %s", args[0])
				}
				return err
			}
			password, err := readPassword(bufio.NewReader(os.Stdin), "New password: ")
			if err != nil {
				return err
			}
			if len(password) < service.MinPasswordLength {
				return fmt.Errorf("password must be at least %d characters", service.MinPasswordLength)
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			if err := store.Admins.UpdatePassword(ctx, a.ID, hash); err != nil {
				return err
			}
			fmt.Printf("password updated for %s\n", a.Email)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admin accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			admins, err := store.Admins.List(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EMAIL\tNAME\tROLE\tACTIVE\tLAST LOGIN")
			for _, a := range admins {
				last := "-"
				if a.LastLogin != nil {
					last = a.LastLogin.Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", a.Email, a.Name, a.Role, a.IsActive, last)
			}
			return tw.Flush()
		},
	}
}

func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads without echo from a terminal, or one line from a pipe.
func readPassword(in *bufio.Reader, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	fmt.Print(label)
	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func describe(err error) error {
	var errs validation.Errors
	if errors.As(err, &errs) {
		msgs := make([]string, len(errs))
		for i, fe := range errs {
			msgs[i] = fe.Field + ": " + fe.Message
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	if errors.Is(err, service.ErrAdminExists) {
		return errors.New("an admin with that email already exists")
	}
	return err
}
