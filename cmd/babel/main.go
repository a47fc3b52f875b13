// Command babel exports gettext catalogs to a JSON document for
// translators and imports the edited document back into the catalogs.
//
// Usage:
//
//	babel [--root DIR] [--config FILE] export_strings [options]
//	babel [--root DIR] [--config FILE] import_strings [options]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
