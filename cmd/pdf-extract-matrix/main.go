package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/chonker5/mcp-pdf-matrix/internal/config"
	"github.com/chonker5/mcp-pdf-matrix/internal/extract"
	"github.com/chonker5/mcp-pdf-matrix/internal/grid"
	"github.com/chonker5/mcp-pdf-matrix/internal/pdf"
)

// pollInterval is how often we check the coordinator for a finished page.
const pollInterval = 25 * time.Millisecond

func main() {
	flags := pflag.NewFlagSet("pdf-extract-matrix", pflag.ExitOnError)
	timeout := flags.Duration("timeout", extract.DefaultBudget, "Budget per extraction attempt")
	maxFileSize := flags.Int64("maxfilesize", config.DefaultMaxFileSize, "Maximum PDF file size in bytes")
	spatial := flags.Bool("spatial", false, "Print the dotted spatial report instead of the matrix")
	noSave := flags.Bool("nosave", false, "Skip writing the .matrix.txt artifact")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.pdf> [page]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders one PDF page as a monospaced character matrix and writes it\n")
		fmt.Fprintf(os.Stderr, "next to the source file as <name>.matrix.txt.\n\nOptions:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) < 1 {
		flags.Usage()
		os.Exit(2)
	}

	path := args[0]
	page := 1
	if len(args) > 1 {
		p, err := strconv.Atoi(args[1])
		if err != nil || p < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid page number %q\n", args[1])
			os.Exit(2)
		}
		page = p
	}

	if err := run(path, page, *timeout, *maxFileSize, *spatial, *noSave); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, page int, timeout time.Duration, maxFileSize int64, spatial, noSave bool) error {
	service := pdf.NewService(maxFileSize)
	coordinator := extract.NewCoordinator(service, timeout)

	if err := coordinator.Start(path, page); err != nil {
		return err
	}

	var result *extract.Result
	for {
		if res, ok := coordinator.Poll(); ok {
			result = res
			break
		}
		if !coordinator.Busy() {
			return fmt.Errorf("extraction produced no result")
		}
		time.Sleep(pollInterval)
	}
	if result.Err != nil {
		return result.Err
	}

	if spatial {
		fmt.Print(result.Matrix.SpatialReport())
	} else {
		fmt.Print(result.Matrix.RenderString())
	}

	if noSave {
		return nil
	}

	session := grid.NewSession(result.Matrix, path)
	savedPath, err := session.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved matrix to %s\n", savedPath)
	return nil
}
