// Package patch defines the mutation instructions produced by one diff pass
// and the append-only Log that carries them.
//
// A Patch addresses its target by the identity the node had in the
// pre-patch live tree; a Log is only valid when applied strictly in
// emission order, because later patches may address structure created by
// earlier ones (an InsertNode followed by a SetAttr on the inserted node).
//
// Logs serialize three ways for debugging and telemetry: a compact varint
// binary format (EncodeLog/DecodeLog), msgpack (MarshalMsgpack), and JSON
// (MarshalJSON). Handler references never cross a codec.
package patch
