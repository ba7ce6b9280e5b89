package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamed0406/uptimemonitor/internal/client"
	"github.com/hamed0406/uptimemonitor/internal/domain"
)

const defaultAPI = "http://localhost:3000"

var checkTypes = map[string]domain.CheckType{
	"website": domain.CheckWebsite,
	"login":   domain.CheckLogin,
}

func newRootCommand() *cobra.Command {
	var api string

	root := &cobra.Command{
		Use:           "uptime",
		Short:         "Trigger checks and read history from an uptime monitor API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	base := os.Getenv("API_BASE")
	if base == "" {
		base = defaultAPI
	}
	root.PersistentFlags().StringVar(&api, "api", base, "API base URL (env API_BASE)")

	newClient := func() *client.Client { return client.New(api) }
	root.AddCommand(
		newCheckCommand(newClient),
		newHistoryCommand(newClient),
	)
	return root
}

// newCheckCommand creates the 'check' command
func newCheckCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:       "check website|login",
		Short:     "Run one probe through the API and print the verdict",
		ValidArgs: []string{"website", "login"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := newClient().Check(cmd.Context(), checkTypes[strings.ToLower(args[0])])
			if err != nil {
				return err
			}
			renderCheck(cmd.OutOrStdout(), rep)
			return nil
		},
	}
}

// newHistoryCommand creates the 'history' command
func newHistoryCommand(newClient func() *client.Client) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := renderers[output]; !ok {
				return fmt.Errorf("unsupported output %q (table, json, yaml)", output)
			}
			entries, err := newClient().History(cmd.Context())
			if err != nil {
				return err
			}
			return renderHistory(cmd.OutOrStdout(), output, entries, time.Now())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	return cmd
}
