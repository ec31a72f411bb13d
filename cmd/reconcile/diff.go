package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reconcile-ui/reconcile/internal/config"
	"github.com/reconcile-ui/reconcile/pkg/diff"
	"github.com/reconcile-ui/reconcile/pkg/htmlconv"
	"github.com/reconcile-ui/reconcile/pkg/live"
	"github.com/reconcile-ui/reconcile/pkg/patch"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

func diffCmd() *cobra.Command {
	var (
		format   string
		output   string
		parallel int
		verify   bool
	)

	cmd := &cobra.Command{
		Use:   "diff OLD.html NEW.html",
		Short: "Compare two HTML fragments and print the patch log",
		Long: `Diff parses two HTML fragments as virtual trees, mounts the old one,
and reconciles the new one against it. The resulting patch log is the
minimal ordered edit script between the two trees.

Formats:
  text     colored human-readable listing (default)
  json     ordered record list
  msgpack  compact binary records
  binary   the wire encoding, replayable with 'reconcile replay'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("parallel") {
				parallel = cfg.Diff.Parallel
			}

			oldTree, err := parseFile(args[0])
			if err != nil {
				return err
			}
			newTree, err := parseFile(args[1])
			if err != nil {
				return err
			}

			// Mount the old tree so its nodes carry live refs, then
			// reconcile the new one against it.
			patcher := live.NewPatcher()
			if err := patcher.Apply(diff.Diff(nil, oldTree)); err != nil {
				return err
			}
			vtree.Record(oldTree)

			log := diff.DiffWith(oldTree, newTree, diff.Options{Parallel: parallel})

			if verify {
				if err := patcher.Apply(log); err != nil {
					return err
				}
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "text":
				printLog(log)
				if verify {
					html, err := htmlconv.RenderString(patcher.Root())
					if err != nil {
						return err
					}
					fmt.Println()
					success("verified: %s", html)
				}
			case "json":
				data, err := json.MarshalIndent(log, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "msgpack":
				data, err := log.MarshalMsgpack()
				if err != nil {
					return err
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
			case "binary":
				if _, err := out.Write(patch.EncodeLog(log)); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, msgpack, binary")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "Diff workers for sibling subtrees (0 = serial)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Apply the log and print the resulting fragment")

	return cmd
}

func parseFile(path string) (*vtree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmlconv.Parse(f)
}

// printLog prints a colored human-readable patch listing.
func printLog(log *patch.Log) {
	for _, w := range log.Warnings() {
		warn("duplicate key %q under ref %d", w.Key, w.Parent)
	}
	for _, pt := range log.Patches() {
		fmt.Println(formatPatch(pt))
	}

	fmt.Println()
	if log.Len() == 0 {
		success("trees are identical")
		return
	}
	parts := make([]string, 0, 4)
	for kind, count := range log.Counts() {
		parts = append(parts, fmt.Sprintf("%d %s", count, kind))
	}
	success("%d patches (%s)", log.Len(), strings.Join(parts, ", "))
}

// formatPatch renders one patch as a colored line.
func formatPatch(pt patch.Patch) string {
	kind := color.CyanString("%-16s", pt.Kind.String())
	switch pt.Kind {
	case patch.SetText:
		return fmt.Sprintf("%s ref=%d text=%q", kind, pt.Ref, pt.Text)
	case patch.SetAttr:
		return fmt.Sprintf("%s ref=%d %s=%q", kind, pt.Ref, pt.Name, pt.Value.Text())
	case patch.RemoveAttr:
		return fmt.Sprintf("%s ref=%d %s", kind, pt.Ref, pt.Name)
	case patch.InsertNode:
		return fmt.Sprintf("%s parent=%d index=%d %s", kind, pt.Parent, pt.Index, summarize(pt.Node))
	case patch.RemoveNode:
		return fmt.Sprintf("%s ref=%d", kind, pt.Ref)
	case patch.ReplaceNode:
		return fmt.Sprintf("%s ref=%d %s", kind, pt.Ref, summarize(pt.Node))
	case patch.ReorderChildren:
		return fmt.Sprintf("%s ref=%d perm=%v", kind, pt.Ref, pt.Perm)
	case patch.AddListener, patch.RemoveListener:
		return fmt.Sprintf("%s ref=%d event=%s", kind, pt.Ref, pt.Event)
	}
	return fmt.Sprintf("%s ref=%d", kind, pt.Ref)
}

// summarize renders a one-token description of a subtree.
func summarize(n *vtree.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case vtree.KindText:
		return fmt.Sprintf("%q", n.Text)
	case vtree.KindComment:
		return fmt.Sprintf("<!--%s-->", n.Text)
	case vtree.KindFragment:
		return fmt.Sprintf("fragment(%d)", len(n.Children))
	default:
		if n.Key != "" {
			return fmt.Sprintf("<%s key=%q>", n.Tag, n.Key)
		}
		return fmt.Sprintf("<%s>", n.Tag)
	}
}
