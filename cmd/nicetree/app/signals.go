package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// ExitCodeInterrupt is the conventional exit status for SIGINT.
const ExitCodeInterrupt = 130

// HandleInterrupts exits with status 130 when the process receives an
// interrupt, mirroring shell convention for Ctrl-C.
func HandleInterrupts() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		os.Exit(ExitCodeInterrupt)
	}()
}
