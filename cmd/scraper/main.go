// ABOUTME: Main entry point for the article scraper
// ABOUTME: Runs one ingestion pass and exits non-zero when the run fails

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
