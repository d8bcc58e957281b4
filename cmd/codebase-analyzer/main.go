// Command codebase-analyzer inspects the current directory and writes a
// markdown analysis report with an embedded AWS deployment research prompt.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"codeanalyzer/internal/analyzer"
)

const usage = `Usage: codebase-analyzer <output_file>
Example: codebase-analyzer agents4energy_analysis.md
`

var errUsage = errors.New("missing output file")

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return errUsage
	}
	if args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(stdout, usage)
		return nil
	}

	report, err := analyzer.Generate(".", analyzer.SystemClock{})
	if err != nil {
		return err
	}
	out, err := report.Write(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "✅ Analysis complete! Report generated: %s\n", out)
	fmt.Fprintf(stdout, "📊 Report size: %s characters\n", humanize.Comma(int64(report.CharCount())))
	fmt.Fprintf(stdout, "📁 Analyzed directory: %s\n", report.RootAbs)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("codebase-analyzer: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
