// Package main provides the cssengine CLI, which compiles style declaration
// files into a deduplicated stylesheet.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/cssengine/internal/cssgen"
)

// errCheckFailed signals a failed lint or contrast check. The report was
// already printed, so main only sets the exit code.
var errCheckFailed = errors.New("check failed")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, cssgen.RenderStyle(cssgen.StyleRed, "Error:", cssgen.ShouldUseColors(cssgen.LintConfig{}))+" "+err.Error())
		}
		os.Exit(1)
	}
}
