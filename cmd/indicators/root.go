package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"indicators/internal/app"
	"indicators/internal/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "indicators",
		Short:         "Daily UF and dolar archiver for mindicador.cl",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCmd(), newInvokeCmd(), newMigrateCmd())
	return rootCmd
}

// withApp loads configuration, wires the application and hands it to fn.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	appCfg, err := config.Init()
	if err != nil {
		logrus.WithError(err).Error("Config initialization failed")
		return err
	}
	app.SetupLogging(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	a, err := app.Build(ctx, appCfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
