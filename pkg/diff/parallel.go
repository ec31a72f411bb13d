package diff

import (
	"golang.org/x/sync/errgroup"

	"github.com/reconcile-ui/reconcile/pkg/patch"
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// minParallelChildren is the child count below which fanning out costs more
// than it saves.
const minParallelChildren = 8

// Options tunes a diff pass.
type Options struct {
	// Parallel is the number of workers for sibling-subtree comparison.
	// Values below 2 keep the pass fully sequential. Subtree comparisons
	// are independent; per-child logs are reassembled in document order
	// before the combined log is returned, so output is deterministic
	// either way.
	Parallel int
}

// parallelPairs diffs aligned child pairs across workers and merges the
// per-child logs back in document order.
func (d *differ) parallelPairs(prevKids, nextKids []*vtree.Node, log *patch.Log) {
	sublogs := make([]*patch.Log, len(prevKids))

	var g errgroup.Group
	g.SetLimit(d.opts.Parallel)
	for i := range prevKids {
		i := i
		g.Go(func() error {
			sub := patch.NewLog()
			d.node(prevKids[i], nextKids[i], sub)
			sublogs[i] = sub
			return nil
		})
	}
	// Workers never return errors; Wait only fences completion.
	_ = g.Wait()

	for _, sub := range sublogs {
		log.Merge(sub)
	}
}
