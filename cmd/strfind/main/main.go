package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/strfind/cmd/strfind"
	"github.com/arthur-debert/strfind/pkg/output"
	"github.com/arthur-debert/strfind/pkg/output/styles"
)

func main() {
	rootCmd := strfind.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !strfind.Reported(err) {
			msg := fmt.Sprintf("Error: %s", output.Describe(err))
			if output.ColorEnabled(os.Stderr, true) {
				msg = styles.GetStyle("Error").Render(msg)
			}
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(strfind.ExitCode(err))
	}
}
