package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/schemakit/schema/fingerprint"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <name>...",
		Short: "Print FNV-1a fingerprints of names",
		Long: `The hash command prints the 32-bit and 64-bit FNV-1a fingerprints the host
uses to key its schema tables.

Example:
  schemactl hash CBaseEntity m_iHealth
  schemactl hash m_iHealth --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
}

type hashResult struct {
	Name  string `json:"name"`
	Key32 string `json:"fnv32"`
	Key64 string `json:"fnv64"`
}

func runHash(args []string) error {
	results := make([]hashResult, 0, len(args))
	for _, name := range args {
		fp := fingerprint.Of(name)
		results = append(results, hashResult{
			Name:  fp.Name,
			Key32: hex32(fp.Key32),
			Key64: hex64(fp.Key64),
		})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%-32s %s  %s\n", r.Name, r.Key32, r.Key64)
	}
	return nil
}
