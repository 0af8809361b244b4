package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gcalutil/internal/calendar"
	"gcalutil/internal/swap"
)

func newSwapDaysCmd() *cobra.Command {
	var (
		firstDate    string
		secondDate   string
		minStartTime string
		maxStartTime string
		calendarName string
	)

	cmd := &cobra.Command{
		Use:   "swap-days",
		Short: "Move the events of the first date to the second one and vice versa",
		Long: `Exchange the timed events of two dates. Each event keeps its time-of-day
and UTC offset; all-day events are never moved. Dates left empty default to
today. The start-time bounds narrow which events on each date are considered.

Both days are read before any event is written. A failed update aborts the
remaining moves and may leave the calendars partially swapped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			first, err := calendar.ParseDate(firstDate)
			if err != nil {
				return err
			}
			second, err := calendar.ParseDate(secondDate)
			if err != nil {
				return err
			}

			client, calendars, cfg, err := setup(ctx)
			if err != nil {
				return err
			}
			selected, err := calendar.SelectCalendars(calendars, calendarName, cfg.PrimaryCalendarID)
			if err != nil {
				return err
			}

			result, err := swap.Swap(client, first, second, minStartTime, maxStartTime, selected)
			if err != nil {
				return err
			}
			if verbose {
				log.Printf("moved %d event(s) from %s and %d from %s",
					len(result.FromFirst), first.Format(calendar.DateLayout),
					len(result.FromSecond), second.Format(calendar.DateLayout))
			}
			fmt.Println("Done!")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstDate, "first-date", "", "first date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&secondDate, "second-date", "", "second date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&minStartTime, "min-start-time", "", "earliest start time of events to move (HH:MM:SS, default 00:00:00)")
	cmd.Flags().StringVar(&maxStartTime, "max-start-time", "", "latest start time of events to move (HH:MM:SS, default 23:59:59)")
	cmd.Flags().StringVar(&calendarName, "calendar", "", "calendar to operate on: a name, 'primary', or 'all' (default all)")
	return cmd
}
