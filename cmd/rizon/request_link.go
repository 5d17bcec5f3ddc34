package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rh-mithu/rizon-client/internal/auth"
	"github.com/rh-mithu/rizon-client/internal/logger"
)

const envEmail = "RIZON_EMAIL"

type requestLinkOptions struct {
	Email string
}

func newRequestLinkCmd(root *rootFlags) *cobra.Command {
	opts := requestLinkOptions{}

	cmd := &cobra.Command{
		Use:   "request-link",
		Short: "Email a login link without opening the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.Email) == "" {
				opts.Email = os.Getenv(envEmail)
			}
			return runRequestLink(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "Address to send the login link to (env "+envEmail+")")

	return cmd
}

func runRequestLink(cmd *cobra.Command, root *rootFlags, opts requestLinkOptions) error {
	if err := auth.ValidateEmail(opts.Email); err != nil {
		return newCommandError("request login link", "validating email", err,
			fmt.Sprintf("Pass --email or set %s", envEmail))
	}

	app, err := newAppContext(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := logger.WithCorrelationID(cmd.Context(), logger.NewCorrelationID())
	log := app.Logger.WithContext(ctx).WithFields(map[string]any{"command": "request-link"})
	log.Debug("requesting login link")

	if err := app.Session.RequestLoginLink(ctx, opts.Email); err != nil {
		return newCommandError("request login link", opts.Email, err,
			requestSuggestion(err, app.Config.API.BaseURL))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Login link sent to %s\n", opts.Email)
	fmt.Fprintln(out, "Open it on this machine, or run: rizon --link '<link>'")
	return nil
}
