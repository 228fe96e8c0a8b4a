package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"ppa-agent/internal/di"
	"ppa-agent/internal/domain/entity"
	"ppa-agent/internal/infrastructure/audit"
	"ppa-agent/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools [name]",
		Short: "List the assistant's tools or show one tool's input schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := di.NewToolRegistry(audit.NewConsoleAuditLogger(cmd.OutOrStdout(), logger.NewNopLogger()))
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return listTools(cmd.OutOrStdout(), registry.Definitions())
			}

			t, err := registry.Lookup(entity.ToolName(args[0]))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
				return err
			}
			return describeTool(cmd.OutOrStdout(), entity.ToolDefinition{
				Name:        t.Name().String(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			})
		},
	}
}

func listTools(w io.Writer, defs []entity.ToolDefinition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tDESCRIPTION\n")
	for _, d := range defs {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Description)
	}
	return tw.Flush()
}

func describeTool(w io.Writer, def entity.ToolDefinition) error {
	fmt.Fprintf(w, "Name:        %s\n", def.Name)
	fmt.Fprintf(w, "Description: %s\n", def.Description)
	fmt.Fprintf(w, "\nInput Schema:\n")

	data, err := json.MarshalIndent(def.Parameters, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	fmt.Fprintf(w, "%s\n", data)
	return nil
}
