package patch

import (
	"github.com/reconcile-ui/reconcile/pkg/vtree"
)

// nullMarker encodes a nil node pointer.
const nullMarker = 0xFF

// EncodeLog encodes a patch log to bytes. Handler references are not
// serializable and are elided; a decoded log is suitable for inspection and
// structural replay, not for re-registering listeners.
func EncodeLog(l *Log) []byte {
	e := NewEncoder()
	EncodeLogTo(e, l)
	return e.Bytes()
}

// EncodeLogTo encodes a patch log using the provided encoder.
func EncodeLogTo(e *Encoder, l *Log) {
	e.WriteUvarint(uint64(l.Len()))
	for i := range l.patches {
		encodePatch(e, &l.patches[i])
	}
	e.WriteUvarint(uint64(len(l.warnings)))
	for _, w := range l.warnings {
		e.WriteUvarint(w.Parent)
		e.WriteString(w.Key)
	}
}

// encodePatch encodes a single patch.
func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Kind))
	e.WriteUvarint(p.Ref)

	switch p.Kind {
	case SetText:
		e.WriteString(p.Text)

	case SetAttr:
		e.WriteString(p.Name)
		encodeValue(e, p.Value)

	case RemoveAttr:
		e.WriteString(p.Name)

	case InsertNode:
		e.WriteUvarint(p.Parent)
		e.WriteUvarint(uint64(p.Index))
		encodeNode(e, p.Node)

	case RemoveNode:
		// No additional data (Ref is sufficient)

	case ReorderChildren:
		e.WriteUvarint(uint64(len(p.Perm)))
		for _, idx := range p.Perm {
			e.WriteUvarint(uint64(idx))
		}

	case ReplaceNode:
		encodeNode(e, p.Node)

	case AddListener, RemoveListener:
		e.WriteString(p.Event)
	}
}

// encodeValue encodes an attribute value. Handler references carry no
// payload on the wire.
func encodeValue(e *Encoder, v vtree.AttrValue) {
	e.WriteByte(byte(v.Kind()))
	switch v.Kind() {
	case vtree.ValueString:
		e.WriteString(v.Str())
	case vtree.ValueBool:
		e.WriteBool(v.Flag())
	case vtree.ValueStyle:
		props := v.Style()
		e.WriteUvarint(uint64(len(props)))
		for _, p := range props {
			e.WriteString(p.Name)
			e.WriteString(p.Value)
		}
	case vtree.ValueHandler:
		// Reference identity cannot cross the codec.
	}
}

// encodeNode encodes a virtual subtree.
func encodeNode(e *Encoder, n *vtree.Node) {
	if n == nil {
		e.WriteByte(nullMarker)
		return
	}

	e.WriteByte(byte(n.Kind))

	switch n.Kind {
	case vtree.KindElement:
		e.WriteString(n.Tag)
		e.WriteString(n.Key)
		e.WriteUvarint(uint64(len(n.Attrs)))
		for _, a := range n.Attrs {
			e.WriteString(a.Name)
			encodeValue(e, a.Value)
		}
		e.WriteUvarint(uint64(len(n.Children)))
		for _, c := range n.Children {
			encodeNode(e, c)
		}

	case vtree.KindText, vtree.KindComment:
		e.WriteString(n.Text)

	case vtree.KindFragment:
		e.WriteUvarint(uint64(len(n.Children)))
		for _, c := range n.Children {
			encodeNode(e, c)
		}
	}
}

// DecodeLog decodes a patch log from bytes.
func DecodeLog(data []byte) (*Log, error) {
	d := NewDecoder(data)
	return DecodeLogFrom(d)
}

// DecodeLogFrom decodes a patch log from a decoder.
func DecodeLogFrom(d *Decoder) (*Log, error) {
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	l := NewLog()
	for i := 0; i < count; i++ {
		var p Patch
		if err := decodePatch(d, &p); err != nil {
			return nil, err
		}
		l.Append(p)
	}

	warnCount, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	for i := 0; i < warnCount; i++ {
		var w DuplicateKeyWarning
		if w.Parent, err = d.ReadUvarint(); err != nil {
			return nil, err
		}
		if w.Key, err = d.ReadString(); err != nil {
			return nil, err
		}
		l.Warn(w)
	}

	return l, nil
}

// decodePatch decodes a single patch.
func decodePatch(d *Decoder, p *Patch) error {
	kindByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Kind = Kind(kindByte)

	p.Ref, err = d.ReadUvarint()
	if err != nil {
		return err
	}

	switch p.Kind {
	case SetText:
		p.Text, err = d.ReadString()

	case SetAttr:
		p.Name, err = d.ReadString()
		if err != nil {
			return err
		}
		p.Value, err = decodeValue(d)

	case RemoveAttr:
		p.Name, err = d.ReadString()

	case InsertNode:
		p.Parent, err = d.ReadUvarint()
		if err != nil {
			return err
		}
		var idx uint64
		idx, err = d.ReadUvarint()
		if err != nil {
			return err
		}
		p.Index = int(idx)
		p.Node, err = decodeNode(d, 0)

	case RemoveNode:
		// No additional data

	case ReorderChildren:
		var n int
		n, err = d.ReadCollectionCount()
		if err != nil {
			return err
		}
		p.Perm = make([]int, n)
		for i := 0; i < n; i++ {
			var idx uint64
			idx, err = d.ReadUvarint()
			if err != nil {
				return err
			}
			p.Perm[i] = int(idx)
		}

	case ReplaceNode:
		p.Node, err = decodeNode(d, 0)

	case AddListener, RemoveListener:
		p.Event, err = d.ReadString()

	default:
		// Unknown patch kind - skip for forward compatibility
	}

	return err
}

// decodeValue decodes an attribute value.
func decodeValue(d *Decoder) (vtree.AttrValue, error) {
	kindByte, err := d.ReadByte()
	if err != nil {
		return vtree.AttrValue{}, err
	}

	switch vtree.ValueKind(kindByte) {
	case vtree.ValueString:
		s, err := d.ReadString()
		if err != nil {
			return vtree.AttrValue{}, err
		}
		return vtree.StringValue(s), nil

	case vtree.ValueBool:
		b, err := d.ReadBool()
		if err != nil {
			return vtree.AttrValue{}, err
		}
		return vtree.BoolValue(b), nil

	case vtree.ValueStyle:
		n, err := d.ReadCollectionCount()
		if err != nil {
			return vtree.AttrValue{}, err
		}
		props := make([]vtree.StyleProp, n)
		for i := 0; i < n; i++ {
			if props[i].Name, err = d.ReadString(); err != nil {
				return vtree.AttrValue{}, err
			}
			if props[i].Value, err = d.ReadString(); err != nil {
				return vtree.AttrValue{}, err
			}
		}
		return vtree.StyleValue(props...), nil

	case vtree.ValueHandler:
		return vtree.HandlerValue(nil), nil

	default:
		return vtree.AttrValue{}, ErrUnknownValueKind
	}
}

// decodeNode decodes a virtual subtree with depth tracking.
func decodeNode(d *Decoder, depth int) (*vtree.Node, error) {
	if depth > MaxNodeDepth {
		return nil, ErrNodeTooDeep
	}

	kindByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if kindByte == nullMarker {
		return nil, nil
	}

	n := &vtree.Node{Kind: vtree.Kind(kindByte)}

	switch n.Kind {
	case vtree.KindElement:
		if n.Tag, err = d.ReadString(); err != nil {
			return nil, err
		}
		if n.Key, err = d.ReadString(); err != nil {
			return nil, err
		}

		attrCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < attrCount; i++ {
			name, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			value, err := decodeValue(d)
			if err != nil {
				return nil, err
			}
			n.Attrs = append(n.Attrs, vtree.Attr{Name: name, Value: value})
		}

		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < childCount; i++ {
			child, err := decodeNode(d, depth+1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}

	case vtree.KindText, vtree.KindComment:
		if n.Text, err = d.ReadString(); err != nil {
			return nil, err
		}

	case vtree.KindFragment:
		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < childCount; i++ {
			child, err := decodeNode(d, depth+1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}

	default:
		// Unknown kind - nothing more to read
	}

	return n, nil
}
