// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/apacite/internal/cite"
	"github.com/pdiddy/apacite/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [citations...]",
	Short: "Parse citation strings into structured records",
	Long: `Parse extracts structured bibliographic fields from APA-style citations.

Citations come from arguments, from --file (one per line), or from stdin.
With no arguments and a terminal on stdin, parse runs an interactive loop:
enter one citation per line, 'q' to quit.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("file", "", "read citations from a file, one per line")
	parseCmd.Flags().String("format", "", "output format: text, json, yaml, or csl")
	parseCmd.Flags().String("out", "", "write records to a YAML result file instead of stdout")
	parseCmd.Flags().BoolP("verbose", "v", false, "print the selected citation variant to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	parser := cite.NewParser(types.ParserConfig{
		Dashes: viper.GetString("parser.dashes"),
	})

	format := types.OutputFormat(viper.GetString("output.format"))
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = types.OutputFormat(f)
	}
	if err := validFormat(format); err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	filePath, _ := cmd.Flags().GetString("file")
	outPath, _ := cmd.Flags().GetString("out")

	var citations []string
	switch {
	case len(args) > 0:
		citations = args
	case filePath != "":
		lines, err := readCitationFile(filePath)
		if err != nil {
			return err
		}
		citations = lines
	case stdinIsTerminal():
		return runInteractive(parser, format, verbose)
	default:
		citations = readLines(bufio.NewScanner(os.Stdin))
	}

	if len(citations) == 0 {
		return fmt.Errorf("no citations to parse")
	}

	records := make([]types.CitationRecord, 0, len(citations))
	for _, c := range citations {
		rec, variant := parser.ParseTrace(c)
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: %s\n", variant, c)
		}
		records = append(records, rec)
	}

	if outPath != "" {
		if err := cite.WriteResultFile(outPath, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d record(s) to %s\n", len(records), outPath)
		return nil
	}

	return formatRecords(os.Stdout, records, format)
}

// runInteractive reads citations from the terminal one line at a time until
// the user enters the quit sentinel.
func runInteractive(parser *cite.Parser, format types.OutputFormat, verbose bool) error {
	fmt.Println("APA Citation Parser")
	fmt.Println("Enter your APA citation below (or 'q' to quit):")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		citation := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(citation, "q") {
			break
		}
		if citation == "" {
			fmt.Println("Please enter a citation or 'q' to quit.")
			continue
		}

		rec, variant := parser.ParseTrace(citation)
		if verbose {
			fmt.Fprintf(os.Stderr, "variant: %s\n", variant)
		}

		fmt.Println("\nParsed Result:")
		if err := formatRecords(os.Stdout, []types.CitationRecord{rec}, format); err != nil {
			return err
		}
		fmt.Println("\nEnter another citation or 'q' to quit:")
	}
	return scanner.Err()
}

// readCitationFile loads citations from a text file, one per line. Blank
// lines and #-comments are skipped.
func readCitationFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading citations: %w", err)
	}
	defer f.Close()
	return readLines(bufio.NewScanner(f)), nil
}

func readLines(scanner *bufio.Scanner) []string {
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// stdinIsTerminal reports whether stdin is attached to a character device,
// which selects the interactive loop.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
