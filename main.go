package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/armago/internal/config"
	"github.com/mcncl/armago/internal/convert"
	"github.com/mcncl/armago/internal/errors"
	"github.com/mcncl/armago/internal/formatter"
	"github.com/mcncl/armago/internal/parser"
	"github.com/mcncl/armago/internal/value"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Pretty      bool   `help:"Render arrays with one element per line." short:"p"`
	Indent      string `help:"Indent string for pretty output."`
	NoSortKeys  bool   `help:"Keep JSON object keys in map iteration order instead of sorting."`
	Config      string `help:"Path to config file. Defaults to the nearest .armago.yml." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("armago"),
		kong.Description("A tool to convert JSON values to Arma (SQF) literals"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := kongParser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("armago version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: armago --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	// 1. Resolve configuration (file + CLI overrides)
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Indent, CLI.Pretty, CLI.NoSortKeys)
	if err != nil {
		return errors.NewInputError("failed to load config", err)
	}

	// 2. Parse JSON input into an Arma value
	v, err := parseInput(cfg)
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 3. Render the literal
	literal := render(v, cfg)

	// 4. Output the result
	return writeOutput(literal)
}

// newConverter builds the outbound converter from config
func newConverter(cfg *config.Config) *convert.Converter {
	return convert.NewConverter(
		convert.WithKeyNaming(cfg.GetKeyName),
		convert.WithSortKeys(cfg.Convert.SortKeys),
	)
}

// render formats a value according to the output config
func render(v value.Value, cfg *config.Config) string {
	f := &formatter.Formatter{Indent: cfg.Output.Indent}
	if cfg.Output.Pretty {
		return f.Pretty(v)
	}
	return f.Format(v)
}

// convertString runs the full string-to-literal pipeline; split out from
// run so tests can drive it without touching stdin or flags.
func convertString(jsonStr string, cfg *config.Config) (string, error) {
	v, err := parser.ParseString(jsonStr, newConverter(cfg))
	if err != nil {
		return "", err
	}
	return render(v, cfg), nil
}

// parseInput reads JSON from file or stdin
func parseInput(cfg *config.Config) (value.Value, error) {
	conv := newConverter(cfg)

	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input, conv)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return value.Nil(), errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput(conv)
		}
		return value.Nil(), errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return value.Nil(), errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return value.Nil(), errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData), conv)
}

// writeOutput writes the literal to file or stdout
func writeOutput(literal string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(literal+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Arma literal written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(literal)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste
// JSON and signal completion with Ctrl+D (EOF)
func readInteractiveInput(conv *convert.Converter) (value.Value, error) {
	fmt.Fprintln(os.Stderr, "armago Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return value.Nil(), errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return value.Nil(), errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData, conv)
}
