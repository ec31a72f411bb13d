// Package htmlconv bridges between HTML text and the engine's trees: it
// parses HTML fragments into virtual trees and serializes virtual or live
// trees back to HTML.
//
// The bridge exists for tooling. The diff command parses two fragments and
// compares them; tests round-trip trees through it. The engine itself never
// touches HTML text.
package htmlconv
