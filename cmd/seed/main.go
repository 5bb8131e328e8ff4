package main

import (
	"os"

	"github.com/example/storefront-state/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.NewLogger("seed").WithError(err).Error("seed failed")
		os.Exit(1)
	}
}
