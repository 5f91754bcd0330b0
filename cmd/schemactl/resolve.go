package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newChainCmd())
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <schema> <class> <member>",
		Short: "Resolve a member to its offset",
		Long: `The resolve command looks up a member in a schema dump (.schm) or gamedata
file (.toml, .json) and prints its offset and whether it is networked.

Example:
  schemactl resolve cs2.schm CBaseEntity m_iHealth
  schemactl resolve gamedata.toml CCSPlayerController m_iPing --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
}

type resolveResult struct {
	Class      string `json:"class"`
	Member     string `json:"member"`
	Offset     int32  `json:"offset"`
	Networked  bool   `json:"networked"`
	Suppressed bool   `json:"suppressed"`
}

func runResolve(args []string) error {
	r, err := openResolver(args[0])
	if err != nil {
		return err
	}

	f, err := r.Field(args[1], args[2])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(resolveResult{
			Class:      f.Class,
			Member:     f.Member,
			Offset:     f.Key.Offset,
			Networked:  f.Key.Networked,
			Suppressed: f.Suppressed(),
		})
	}
	printInfo("%s::%s\n", f.Class, f.Member)
	printInfo("  offset:     %s\n", hexOffset(f.Key.Offset))
	printInfo("  networked:  %t\n", f.Key.Networked)
	if f.Suppressed() {
		printInfo("  suppressed: true\n")
	}
	return nil
}

func newChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <schema> <class>",
		Short: "Resolve a class's network state chain offset",
		Long: `The chain command prints the offset of a class's networked-state chain
anchor relative to the start of an instance.

Example:
  schemactl chain cs2.schm CBaseEntity`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChain(args)
		},
	}
}

func runChain(args []string) error {
	r, err := openResolver(args[0])
	if err != nil {
		return err
	}

	off, err := r.ResolveChainOffset(args[1])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"class":        args[1],
			"chain_offset": off,
		})
	}
	printInfo("%s chain offset: %s\n", args[1], hexOffset(int32(off)))
	return nil
}

