package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema"
	"github.com/joshuapare/schemakit/schema/dirty"
)

const (
	// scratchHandle identifies the scratch object in dirty-mark output.
	scratchHandle types.Handle = 1
	maxScratch    int64        = 1 << 24
)

var (
	notifyChained  bool
	notifyReadOnly bool
)

func init() {
	cmd := newNotifyCmd()
	cmd.Flags().BoolVar(&notifyChained, "chained", false, "Offset the mark by the class's chain offset")
	cmd.Flags().BoolVar(&notifyReadOnly, "readonly", false, "Notify through a read-only object")
	rootCmd.AddCommand(cmd)
}

func newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify <schema> <class> <member>",
		Short: "Dry-run a change notification against a scratch object",
		Long: `The notify command resolves a member and runs the change notifier against a
zeroed scratch object, reporting whether the host would have been asked to
mark the field dirty.

Example:
  schemactl notify cs2.schm CBaseEntity m_iHealth
  schemactl notify cs2.schm CCSGameRules m_bIsValveDS
  schemactl notify cs2.schm CBaseEntity m_iHealth --chained`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(args)
		},
	}
}

type notifyResult struct {
	Class     string `json:"class"`
	Member    string `json:"member"`
	Offset    int32  `json:"offset"`
	Networked bool   `json:"networked"`
	Result    string `json:"result"`
	Marks     int    `json:"marks"`
}

func runNotify(args []string) error {
	r, err := openResolver(args[0])
	if err != nil {
		return err
	}

	f, err := r.Field(args[1], args[2])
	if err != nil {
		return err
	}

	var chain int16
	if notifyChained {
		if chain, err = r.ResolveChainOffset(f.Class); err != nil {
			return err
		}
	}

	obj := scratchObject(int64(chain) + int64(f.Key.Offset))
	if notifyReadOnly {
		obj = obj.ReadOnly()
	}

	tracker := dirty.NewTracker(0)
	n := schema.NewNotifier(tracker)

	var marked bool
	if notifyChained {
		marked, err = n.NotifyChained(obj, f, chain)
	} else {
		marked, err = n.NotifyField(obj, f)
	}
	if err != nil {
		return err
	}

	res := notifyResult{
		Class:     f.Class,
		Member:    f.Member,
		Offset:    f.Key.Offset,
		Networked: f.Key.Networked,
		Result:    outcome(f, marked),
		Marks:     tracker.Calls(),
	}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s::%s @ %s: %s\n", res.Class, res.Member, hexOffset(res.Offset), res.Result)
	for _, rg := range tracker.Ranges(scratchHandle) {
		printVerbose("  dirty [%#x, %#x)\n", rg.Off, rg.Off+rg.Len)
	}
	return nil
}

func outcome(f schema.Field, marked bool) string {
	switch {
	case marked:
		return "marked"
	case f.Suppressed():
		return "suppressed"
	default:
		return "not networked"
	}
}

// scratchObject returns a zeroed mutable object large enough to hold the
// byte at end. Negative or implausibly large ends yield an empty object so
// the notifier reports the bounds failure.
func scratchObject(end int64) *schema.Object {
	size := 0
	if end >= 0 && end < maxScratch {
		size = int(end) + 8
	}
	return schema.NewObject(scratchHandle, make([]byte, size), types.AccessMutable)
}
