package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newCLI(os.Stdin, os.Stdout, os.Stderr).execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}
