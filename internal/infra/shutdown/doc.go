// Package shutdown turns process termination signals into context
// cancellation.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	app.RunContext(ctx, os.Args)
//
// A benchmark in progress stops at the next iteration boundary once ctx
// is cancelled.
package shutdown
