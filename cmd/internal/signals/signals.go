package signals

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Context is cancelled on the first SIGINT or SIGTERM so long runs can stop in a nice way.
func Context() (context.Context, context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case sig := <-sigs:
			fmt.Println()
			fmt.Println(sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}
