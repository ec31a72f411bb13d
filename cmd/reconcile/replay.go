package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reconcile-ui/reconcile/pkg/history"
	"github.com/reconcile-ui/reconcile/pkg/htmlconv"
	"github.com/reconcile-ui/reconcile/pkg/live"
	"github.com/reconcile-ui/reconcile/pkg/patch"
)

func replayCmd() *cobra.Command {
	var (
		fromStore bool
		upTo      uint64
		listing   bool
	)

	cmd := &cobra.Command{
		Use:   "replay LOG",
		Short: "Apply a recorded patch log against a fresh tree",
		Long: `Replay reads a patch log in the wire encoding, applies it against an
empty tree, and prints the resulting HTML fragment.

With --store, LOG is a history database recorded by an engine session.
All cycles are replayed in order, so the rebuilt tree matches the live
tree the session ended with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patcher := live.NewPatcher()

			apply := func(seq uint64, frame []byte) error {
				log, err := patch.DecodeLog(frame)
				if err != nil {
					return err
				}
				if listing {
					for _, pt := range log.Patches() {
						fmt.Println(formatPatch(pt))
					}
				}
				if err := patcher.Apply(log); err != nil {
					return fmt.Errorf("cycle %d: %w", seq, err)
				}
				return nil
			}

			if fromStore {
				store, err := history.Open(args[0])
				if err != nil {
					return err
				}
				defer store.Close()

				var cycles int
				err = store.Walk(func(seq uint64, frame []byte) error {
					if upTo != 0 && seq > upTo {
						return nil
					}
					cycles++
					return apply(seq, frame)
				})
				if err != nil {
					return err
				}
				success("replayed %d cycles", cycles)
			} else {
				frame, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				if err := apply(1, frame); err != nil {
					return err
				}
			}

			html, err := htmlconv.RenderString(patcher.Root())
			if err != nil {
				return err
			}
			fmt.Println(html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStore, "store", false, "Treat LOG as a history database")
	cmd.Flags().Uint64Var(&upTo, "seq", 0, "With --store, stop after this cycle")
	cmd.Flags().BoolVarP(&listing, "list", "l", false, "Print each patch while replaying")

	return cmd
}
