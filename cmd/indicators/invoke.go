package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"indicators/internal/app"
	"indicators/internal/indicator"
)

var errInvocationFailed = errors.New("invocation failed")

func newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "invoke <uf|dolar|datos>",
		Short:     "Run one operation once and print its response",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{indicator.OperationUF, indicator.OperationDolar, indicator.OperationHistory},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if a.Config.Store.AutoMigrate {
					if err := a.Migrate(ctx); err != nil {
						return err
					}
				}
				resp, err := a.Operations.Run(ctx, args[0])
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
}

// printResponse writes resp as indented JSON and reports failed responses as an error.
func printResponse(w io.Writer, resp indicator.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w with status %d", errInvocationFailed, resp.StatusCode)
	}
	return nil
}
