// Package cmd wires the command-line surface: flag parsing, authentication,
// and the duration and swap-days operations.
package cmd

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"gcalutil/internal/auth"
	"gcalutil/internal/calendar"
	"gcalutil/internal/config"
)

var (
	configFile        string
	clientSecretsPath string
	credentialsPath   string
	primaryCalendarID string
	verbose           bool
)

// errNoActionSelected is returned when the tool is invoked without an
// operation.
var errNoActionSelected = errors.New("no action selected: choose one of the subcommands")

var rootCmd = &cobra.Command{
	Use:   "gcalutil",
	Short: "Personal automation utilities for Google Calendar",
	Long: `gcalutil talks directly to the Google Calendar API to sum the durations
of events matching a date range and title filters, and to swap the events of
two days while preserving time-of-day.

The tool authenticates with OAuth on first run and caches the credential in a
local file. Runs are synchronous and single-user; every remote call blocks
until it completes.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Usage()
		return errNoActionSelected
	},
}

// Execute is the entry point for the CLI.
func Execute() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&clientSecretsPath, "client-secrets", "", "path to the Google OAuth client secrets JSON file")
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", "", "path to the cached OAuth credential file")
	rootCmd.PersistentFlags().StringVar(&primaryCalendarID, "primary-calendar-id", "", "calendar id treated as primary for ordering and selection")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newDurationCmd())
	rootCmd.AddCommand(newSwapDaysCmd())
}

// setup authenticates against the calendar service and fetches the
// owned-calendar snapshot, primary first.
func setup(ctx context.Context) (*calendar.Client, []calendar.CalendarRef, *config.Config, error) {
	cfg, err := config.Load(configFile, clientSecretsPath, credentialsPath, primaryCalendarID)
	if err != nil {
		return nil, nil, nil, err
	}

	clientID, clientSecret, err := config.LoadClientSecrets(cfg.ClientSecretsPath)
	if err != nil {
		return nil, nil, nil, err
	}

	store := auth.NewFileCredentialStore(cfg.CredentialsPath)
	httpClient, err := auth.Authenticate(ctx, auth.GoogleConfig(clientID, clientSecret), store)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := calendar.NewClient(ctx, httpClient)
	if err != nil {
		return nil, nil, nil, err
	}

	calendars, err := client.ListOwnedCalendars(cfg.PrimaryCalendarID)
	if err != nil {
		return nil, nil, nil, err
	}
	if verbose {
		log.Printf("found %d owned calendar(s)", len(calendars))
	}

	return client, calendars, cfg, nil
}
