// Package main provides the styled CLI: it renders components declared in
// definitions files and prints their markup and generated CSS.
package main

import (
	"os"

	"github.com/yacobolo/styled/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		report.New(os.Stderr, report.ShouldUseColors(false, os.Stderr)).PrintError(err)
		os.Exit(1)
	}
}
