package main

import (
	"errors"
	"fmt"

	"ppa-agent/internal/di"
	"ppa-agent/internal/infrastructure/config"
	"ppa-agent/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ppaa",
		Short:         "Personal Productivity & Automation Agent",
		Long:          "Interactive assistant that schedules events, adds tasks and drafts emails through a hosted LLM. Every action is audit-logged to the console.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSession,
	}

	cmd.AddCommand(newToolsCmd())
	return cmd
}

func runSession(cmd *cobra.Command, args []string) error {
	envService := env.NewEnvService()

	cfg, err := config.Load(envService)
	if err != nil {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "ERROR: %v\n", err)
		if errors.Is(err, config.ErrMissingCredential) {
			fmt.Fprintf(errOut, "Please ensure your %s is correctly set in the .env file.\n", config.CredentialEnv)
		}
		return err
	}

	container, err := di.NewContainer(cmd.Context(), cfg, cmd.OutOrStdout())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
		return err
	}
	defer container.Close()

	container.Logger.Info("Environment loaded",
		"appEnv", envService.AppEnv(),
		"files", envService.LoadedFiles(),
	)

	loop := container.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
	return loop.Run(cmd.Context())
}
