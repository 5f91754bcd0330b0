package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/schemakit/schema/blacklist"
)

var blacklistCheck string

func init() {
	cmd := newBlacklistCmd()
	cmd.Flags().StringVar(&blacklistCheck, "check", "", "Only report whether this member name is suppressed")
	rootCmd.AddCommand(cmd)
}

func newBlacklistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blacklist",
		Short: "List member names whose change notifications are suppressed",
		Long: `The blacklist command lists the member names for which the notifier never
forwards a change to the host.

Example:
  schemactl blacklist
  schemactl blacklist --check m_bIsValveDS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlacklist()
		},
	}
}

func runBlacklist() error {
	if blacklistCheck != "" {
		suppressed := blacklist.Contains(blacklistCheck)
		if jsonOut {
			return printJSON(map[string]interface{}{
				"name":       blacklistCheck,
				"suppressed": suppressed,
			})
		}
		printInfo("%s: suppressed=%t\n", blacklistCheck, suppressed)
		return nil
	}

	names := blacklist.Names()
	if jsonOut {
		return printJSON(names)
	}
	for _, name := range names {
		printInfo("%s\n", name)
	}
	printVerbose("%d names\n", len(names))
	return nil
}
