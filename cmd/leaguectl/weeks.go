package main

import (
	"league-server/internal/schedule"

	"github.com/spf13/cobra"
)

func weeksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Compute and reschedule competition week windows",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "window [civil-date] [zone] [local-start] [local-end]",
		Short: "Print the UTC window for a civil date and local HH:MM:SS bounds",
		Args:  cobra.ExactArgs(4),
		// Pure computation, no configuration or database needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := schedule.New(nil, nil).Preview(windowInput(args))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), window)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reschedule [week-id] [civil-date] [zone] [local-start] [local-end]",
		Short: "Recompute a week's UTC window from new civil inputs and store it",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			week, err := a.deps.Schedule.Reschedule(cmd.Context(), id, windowInput(args[1:]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), week)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check [week-id] [time]",
		Short: "Report whether a time (RFC3339 or unix seconds) lies inside a week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			check, err := a.deps.Schedule.CheckTime(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), check)
		},
	})

	return cmd
}

func windowInput(args []string) schedule.WindowInput {
	return schedule.WindowInput{
		CivilDate:  args[0],
		TimeZone:   args[1],
		LocalStart: args[2],
		LocalEnd:   args[3],
	}
}
