package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"runtime/debug"
)

const defaultVersion = "dev"

// Build information (set with -ldflags "-X main.version=... -X main.installDir=...")
var (
	version    = defaultVersion
	installDir = ""
)

var readBuildInfo = debug.ReadBuildInfo

func main() {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitStatusError
		if stderrors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// exitStatusError carries the console program's exit code out of an action.
// The response has already been printed, so main exits without a message.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("console command exited with code %d", e.code)
}

func resolveVersion() string {
	if version != defaultVersion {
		return version
	}

	info, ok := readBuildInfo()
	if !ok || info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return version
	}
	return info.Main.Version
}
