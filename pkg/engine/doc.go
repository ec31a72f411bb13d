// Package engine runs the render loop: retain the last virtual tree, diff
// the next one against it, apply the patch log to the live tree, and hand
// back a per-cycle report.
//
// A minimal session:
//
//	eng := engine.New()
//	report, err := eng.Render(ctx, vtree.Div(vtree.Text("hello")))
//
// Telemetry, parallel diffing, and patch history are opt-in through
// options; the zero configuration engine carries no extra cost.
package engine
