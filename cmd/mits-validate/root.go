package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mv "github.com/mitsval/validator"
	"github.com/mitsval/validator/engine"
	"github.com/mitsval/validator/pkg/logger"
)

// exitInvalid is returned when at least one document failed validation.
const exitInvalid = 1

type cliOptions struct {
	format          string
	configFile      string
	maxErrors       int
	checkReferences bool
	workers         int
	verbose         bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "mits-validate [file...]",
		Short: "Validate MITS 5.0 fee documents",
		Long: `mits-validate checks property fee XML documents against the
MITS 5.0 rule set and reports every violation with its rule id and
document path. Pass one or more files, or "-" to read from stdin.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	flags.IntVar(&opts.maxErrors, "max-errors", 0, "stop after this many errors (0 = unlimited)")
	flags.BoolVar(&opts.checkReferences, "check-references", false, "require referenced internal codes to exist")
	flags.IntVar(&opts.workers, "workers", 0, "worker count for multi-file validation (0 = NumCPU)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mits-validate %s (schema %s)\n", mv.EngineVersion, mv.MITS50)
		},
	}
}

func runValidate(cmd *cobra.Command, opts *cliOptions, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	switch {
	case cfg.Verbose:
		logger.SetLevel(logger.LevelDebug)
	case cfg.LogLevel != "":
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
	default:
		logger.SetLevel(logger.LevelWarn)
	}

	if cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}

	v := engine.New(
		mv.WithMaxErrors(cfg.MaxErrors),
		mv.WithReferenceTargets(cfg.CheckReferences),
		mv.WithWorkerCount(cfg.Workers),
	)

	docs, names, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	results := v.ValidateBatch(context.Background(), docs)

	anyInvalid := false
	out := cmd.OutOrStdout()
	for i, result := range results {
		if !result.Valid {
			anyInvalid = true
		}
		if cfg.Format == "json" {
			if err := writeJSON(out, names[i], result); err != nil {
				return err
			}
		} else {
			writeText(out, names[i], result)
		}
	}

	if anyInvalid {
		os.Exit(exitInvalid)
	}
	return nil
}

// readInputs loads every named file, treating "-" as stdin.
func readInputs(stdin io.Reader, args []string) ([][]byte, []string, error) {
	docs := make([][]byte, 0, len(args))
	names := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, nil, fmt.Errorf("reading stdin: %w", err)
			}
			docs = append(docs, data)
			names = append(names, "<stdin>")
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, data)
		names = append(names, arg)
	}

	return docs, names, nil
}

func writeText(w io.Writer, name string, result *mv.Result) {
	status := "VALID"
	if !result.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(w, "%s: %s (%d errors, %d warnings)\n",
		name, status, result.ErrorCount(), result.WarningCount())
	for _, line := range result.Strings() {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// jsonMessage is the wire form of one validation message.
type jsonMessage struct {
	Rule     string            `json:"rule"`
	Severity string            `json:"severity"`
	Text     string            `json:"text"`
	Path     string            `json:"path,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

// jsonReport is the wire form of one document's validation outcome.
type jsonReport struct {
	File     string        `json:"file"`
	Valid    bool          `json:"valid"`
	Errors   []jsonMessage `json:"errors"`
	Warnings []jsonMessage `json:"warnings"`
	Info     []jsonMessage `json:"info,omitempty"`
}

func writeJSON(w io.Writer, name string, result *mv.Result) error {
	report := jsonReport{
		File:     name,
		Valid:    result.Valid,
		Errors:   toJSONMessages(result.Errors),
		Warnings: toJSONMessages(result.Warnings),
		Info:     toJSONMessages(result.Info),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func toJSONMessages(msgs []mv.Message) []jsonMessage {
	out := make([]jsonMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, jsonMessage{
			Rule:     string(m.RuleID),
			Severity: string(m.Severity),
			Text:     m.Text,
			Path:     m.Path,
			Details:  m.Details,
		})
	}
	return out
}
