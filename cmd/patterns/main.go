package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pattern-ca/internal/core"
	"pattern-ca/internal/sims/pattern"
)

// maxLineLen gives a reasonable upper limit for the input row length. Plenty
// for hand-written puzzles; raise it if some generator produces wider rows.
const maxLineLen = 1024 * 10

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <textfile>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := classifyFile(flag.Arg(0), os.Stdout); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

// classifyFile runs every non-blank line of the named file through the
// simulation and writes one verdict label per line, in file order.
func classifyFile(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// The scanner cap doubles as the line length limit: the effective
	// maximum token size is the larger of the two arguments.
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row, err := core.ParseRow(line)
		if err != nil {
			return err
		}
		verdict, _ := pattern.Run(row)
		fmt.Fprintln(out, verdict)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("file contains lines longer than %d characters", maxLineLen)
		}
		return err
	}
	return nil
}
