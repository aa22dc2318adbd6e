package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"league-server/internal/store"
	"league-server/internal/webhooks/admin"

	"github.com/spf13/cobra"
)

func eventsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect and re-drive logged webhook events",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List logged events, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			page, _ := cmd.Flags().GetInt("page")
			pageSize, _ := cmd.Flags().GetInt("page-size")

			result, err := a.deps.Admin.ListEvents(cmd.Context(), admin.ListParams{
				Status:   status,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	listCmd.Flags().StringP("status", "s", "", "Filter by status (pending, success, failed)")
	listCmd.Flags().IntP("page", "p", 1, "Page number")
	listCmd.Flags().IntP("page-size", "n", 0, "Events per page")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show an event with its participant, activities and candidate weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			enriched, err := a.deps.Admin.GetEnrichedEvent(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), enriched)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "replay [id]",
		Short: "Log a copy of an event and process it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.redrive(cmd, args[0], a.deps.Admin.Replay)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "retry [id]",
		Short: "Reset an event and process it again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.redrive(cmd, args[0], a.deps.Admin.Retry)
		},
	})

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete logged events",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			olderThan, _ := cmd.Flags().GetDuration("older-than")
			if !all && olderThan <= 0 {
				return fmt.Errorf("pass --older-than or --all")
			}

			var cutoff *time.Time
			if !all {
				t := time.Now().Add(-olderThan)
				cutoff = &t
			}
			deleted, err := a.deps.Admin.Purge(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d events\n", deleted)
			return nil
		},
	}
	purgeCmd.Flags().Duration("older-than", 0, "Delete events created before now minus this duration (e.g. 720h)")
	purgeCmd.Flags().Bool("all", false, "Delete every event")
	cmd.AddCommand(purgeCmd)

	return cmd
}

// redrive queues an event through action and waits for processing to finish
func (a *app) redrive(cmd *cobra.Command, arg string, action func(context.Context, int64) (store.WebhookEvent, error)) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	event, err := action(ctx, id)
	if err != nil {
		return err
	}

	drainCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	if err := a.deps.Queue.Drain(drainCtx); err != nil {
		return fmt.Errorf("event %d queued but processing did not finish: %w", event.ID, err)
	}

	processed, err := a.deps.Admin.GetEnrichedEvent(ctx, event.ID)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), processed.Event)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q", s)
	}
	return id, nil
}
