package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gcalutil/internal/calendar"
	"gcalutil/internal/duration"
)

func newDurationCmd() *cobra.Command {
	var (
		minDate       string
		maxDate       string
		calendarName  string
		titles        string
		titleContains bool
		showEvents    bool
		icsPath       string
	)

	cmd := &cobra.Command{
		Use:   "duration",
		Short: "Sum the durations of matching events",
		Long: `Calculate the total duration of the events matching the given date bounds,
calendar, and titles.

If neither --min-date nor --max-date is set, the current week is taken
(Monday through Sunday). If only one is set, the other defaults to today.
Multiple titles can be given separated by /. Without --title-contains the
title must match exactly (case-insensitive).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			window, err := calendar.ResolveWindow(minDate, maxDate)
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

			events, err := duration.Collect(client, selected, window, calendar.SplitTitles(titles), titleContains)
			if err != nil {
				return err
			}

			report, err := duration.Aggregate(events)
			if errors.Is(err, duration.ErrNoMatchingEvents) {
				fmt.Println("There are no events matching the search criteria for the selected period.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(report.Summary())
			if showEvents {
				noun := report.Noun()
				fmt.Printf("%s:\n", strings.ToUpper(noun[:1])+noun[1:])
				for _, line := range report.Lines() {
					fmt.Println(line)
				}
			}

			if icsPath != "" {
				if err := writeICSFile(icsPath, report.Events); err != nil {
					return err
				}
				if verbose {
					log.Printf("wrote %d event(s) to %s", len(report.Events), icsPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&minDate, "min-date", "", "lower date bound (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&maxDate, "max-date", "", "upper date bound (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&calendarName, "calendar", "", "calendar to search: a name, 'primary', or 'all' (default all)")
	cmd.Flags().StringVar(&titles, "titles", "", "event titles to match, separated by / (default all events)")
	cmd.Flags().BoolVar(&titleContains, "title-contains", false, "match titles containing the search term instead of exact match")
	cmd.Flags().BoolVar(&showEvents, "show-events", false, "list the selected events")
	cmd.Flags().StringVar(&icsPath, "ics", "", "write the selected events to an iCalendar file")
	return cmd
}

func writeICSFile(path string, events []calendar.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ICS file: %w", err)
	}
	if err := calendar.WriteICS(f, events); err != nil {
		f.Close()
		return fmt.Errorf("failed to write ICS file: %w", err)
	}
	return f.Close()
}
