package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func capacityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Inspect and control event log storage acceptance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show storage usage and runway",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.deps.Guard.GetStatus(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Run the threshold check, disabling acceptance when exceeded",
		RunE: func(cmd *cobra.Command, args []string) error {
			disabled, err := a.deps.Guard.CheckAndAutoDisable(cmd.Context())
			if err != nil {
				return err
			}
			if disabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Storage threshold reached: webhook acceptance disabled")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Storage below threshold or already disabled: no change")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Resume accepting webhook events",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.deps.Guard.Enable(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Webhook acceptance enabled")
			return nil
		},
	})

	disableCmd := &cobra.Command{
		Use:   "disable",
		Short: "Stop accepting webhook events",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, _ := cmd.Flags().GetString("message")
			if err := a.deps.Guard.Disable(cmd.Context(), message); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Webhook acceptance disabled")
			return nil
		},
	}
	disableCmd.Flags().StringP("message", "m", "Disabled by operator", "Reason recorded with the status")
	cmd.AddCommand(disableCmd)

	return cmd
}
