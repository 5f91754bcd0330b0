package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/schemakit/internal/dump"
	"github.com/joshuapare/schemakit/internal/gamedata"
	"github.com/joshuapare/schemakit/schema"
)

func init() {
	rootCmd.AddCommand(newConvertCmd())
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between gamedata files and binary dumps",
		Long: `The convert command reads a schema from a dump (.schm) or gamedata file
(.toml, .json) and writes it in the format implied by the output extension.

Example:
  schemactl convert gamedata.toml cs2.schm
  schemactl convert cs2.schm cs2.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
}

func runConvert(args []string) error {
	in, out := args[0], args[1]

	printVerbose("Reading schema: %s\n", in)
	t, err := schema.OpenTable(in)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	if strings.EqualFold(filepath.Ext(out), schema.DumpExt) {
		if err := dump.Write(out, t); err != nil {
			return err
		}
	} else {
		f, err := gamedata.FormatFor(out)
		if err != nil {
			return err
		}
		if err := writeGamedata(out, gamedata.FromTable(t), f); err != nil {
			return err
		}
	}

	st := t.Stats()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":   in,
			"output":  out,
			"classes": st.Classes,
			"members": st.Members,
		})
	}
	printInfo("Wrote %s (%d classes, %d members)\n", out, st.Classes, st.Members)
	return nil
}

func writeGamedata(path string, doc *gamedata.File, f gamedata.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := doc.Encode(file, f); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
