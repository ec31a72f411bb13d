package patch

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// Record is the flattened, self-describing form of a Patch used for debug
// export. Handler references are elided; everything else round-trips.
type Record struct {
	Kind   string      `json:"kind" msgpack:"kind"`
	Ref    uint64      `json:"ref" msgpack:"ref"`
	Parent uint64      `json:"parent,omitempty" msgpack:"parent,omitempty"`
	Index  int         `json:"index,omitempty" msgpack:"index,omitempty"`
	Name   string      `json:"name,omitempty" msgpack:"name,omitempty"`
	Value  string      `json:"value,omitempty" msgpack:"value,omitempty"`
	Text   string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Event  string      `json:"event,omitempty" msgpack:"event,omitempty"`
	Perm   []int       `json:"perm,omitempty" msgpack:"perm,omitempty"`
	Node   *NodeRecord `json:"node,omitempty" msgpack:"node,omitempty"`
}

// NodeRecord is the debug-export form of a virtual subtree.
type NodeRecord struct {
	Kind     string            `json:"kind" msgpack:"kind"`
	Tag      string            `json:"tag,omitempty" msgpack:"tag,omitempty"`
	Key      string            `json:"key,omitempty" msgpack:"key,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Text     string            `json:"text,omitempty" msgpack:"text,omitempty"`
	Children []*NodeRecord     `json:"children,omitempty" msgpack:"children,omitempty"`
}

// LogExport is the envelope for exported logs.
type LogExport struct {
	Patches  []Record              `json:"patches" msgpack:"patches"`
	Warnings []DuplicateKeyWarning `json:"warnings,omitempty" msgpack:"warnings,omitempty"`
}

// Records returns the flattened debug records for the log, in emission
// order.
func (l *Log) Records() []Record {
	out := make([]Record, 0, l.Len())
	for i := range l.patches {
		out = append(out, recordOf(&l.patches[i]))
	}
	return out
}

// MarshalJSON exports the log as an ordered JSON record list.
func (l *Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(LogExport{Patches: l.Records(), Warnings: l.warnings})
}

// MarshalMsgpack exports the log as msgpack for compact telemetry capture.
func (l *Log) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(LogExport{Patches: l.Records(), Warnings: l.warnings})
}

func recordOf(p *Patch) Record {
	r := Record{
		Kind:   p.Kind.String(),
		Ref:    p.Ref,
		Parent: p.Parent,
		Index:  p.Index,
		Name:   p.Name,
		Text:   p.Text,
		Event:  p.Event,
		Perm:   p.Perm,
	}
	if p.Kind == SetAttr {
		r.Value = p.Value.Text()
	}
	if p.Node != nil {
		r.Node = nodeRecordOf(p.Node)
	}
	return r
}

func nodeRecordOf(n *vtree.Node) *NodeRecord {
	if n == nil {
		return nil
	}
	r := &NodeRecord{
		Kind: n.Kind.String(),
		Tag:  n.Tag,
		Key:  n.Key,
		Text: n.Text,
	}
	for _, a := range n.Attrs {
		if _, isEvent := a.Event(); isEvent {
			continue
		}
		if r.Attrs == nil {
			r.Attrs = make(map[string]string)
		}
		r.Attrs[a.Name] = a.Value.Text()
	}
	for _, c := range n.Children {
		r.Children = append(r.Children, nodeRecordOf(c))
	}
	return r
}
