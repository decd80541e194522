package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dotgrid/pattern-tools/internal/gridio"
	"github.com/dotgrid/pattern-tools/internal/verify"
)

func main() {
	patternPath := flag.String("pattern", "", "Path to the reference pattern grid JSON (required)")
	dir := flag.String("dir", ".", "Directory containing candidate grid files")
	glob := flag.String("glob", "*_minified.json", "Glob matched against candidate file names")
	showPattern := flag.Bool("show-pattern", false, "Print the transformed pattern for non-identity matches")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *patternPath == "" {
		fmt.Fprintln(os.Stderr, "dotgrid-verify: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}

	reference, err := gridio.LoadGrid(*patternPath)
	if err != nil {
		log.Fatalf("Failed to load reference pattern: %v", err)
	}

	paths, err := verify.Discover(*dir, *glob)
	if err != nil {
		log.Fatalf("Failed to discover candidates: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No candidate files matching %q under %s", *glob, *dir)
	}

	summary := verify.Run(os.Stdout, reference, paths, verify.Options{ShowPattern: *showPattern})
	if !summary.Clean() {
		os.Exit(1)
	}
}
