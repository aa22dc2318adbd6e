package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func subscriptionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Manage the provider push subscription",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Reuse or create the subscription, as done at server start",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.deps.Subscriptions.Setup(cmd.Context()); err != nil {
				return err
			}
			view, err := a.deps.Subscriptions.View(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "Show the stored status and the provider's subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.deps.Subscriptions.View(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "renew",
		Short: "Delete and recreate the subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := a.deps.Subscriptions.Renew(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sub)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove every provider subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.deps.Subscriptions.Teardown(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Webhook subscription removed")
			return nil
		},
	})

	return cmd
}
