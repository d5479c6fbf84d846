package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/clarete/pcomb/examples/arithmetic"
	"github.com/clarete/pcomb/examples/json"
	"github.com/clarete/pcomb/ptrace"
)

var traceGrammar string
var traceExpr string

var traceCmd = &cobra.Command{
	Use:     "trace",
	GroupID: "grammar",
	Short:   "Parse an input string, dumping the rule-by-rule trace and memo hit count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := newLogger(cfg)
		defer logger.Sync() //nolint:errcheck

		grammar := traceGrammar
		if grammar == "" {
			grammar = cfg.GetString("grammar")
		}

		stats := &ptrace.Stats{}
		var parseErr error

		switch grammar {
		case "arithmetic":
			var result int
			result, parseErr = arithmetic.TracedEval(traceExpr, stats)
			if parseErr == nil {
				logger.Info("parsed", zap.Int("result", result))
			}
		case "json":
			var value json.Value
			value, parseErr = json.TracedParse(traceExpr, stats)
			if parseErr == nil {
				logger.Info("parsed", zap.Int("kind", int(value.Kind)))
			}
		default:
			return fmt.Errorf("trace: unknown grammar %q (want arithmetic or json)", grammar)
		}

		if parseErr != nil {
			logger.Error("parse failed", zap.Error(parseErr))
		}

		return dumpTrace(cfg.GetString("trace.format"), stats, parseErr)
	},
}

func init() {
	traceCmd.Flags().StringVar(&traceGrammar, "grammar", "", "arithmetic or json (default from config)")
	traceCmd.Flags().StringVar(&traceExpr, "expr", "", "the input string to parse")
	traceCmd.MarkFlagRequired("expr") //nolint:errcheck
}

// traceDump is the YAML-serializable shape of a captured trace,
// mirroring the teacher's stacktrace []TracerSpan (base_parser.go) as
// a round-trippable document instead of an in-memory-only field.
type traceDump struct {
	Spans    []ptrace.Span `yaml:"spans"`
	MemoHits int           `yaml:"memo_hits"`
	Error    string        `yaml:"error,omitempty"`
}

func dumpTrace(format string, stats *ptrace.Stats, parseErr error) error {
	dump := traceDump{Spans: stats.Spans, MemoHits: stats.MemoHits}
	if parseErr != nil {
		dump.Error = parseErr.Error()
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(dump)
	}

	for _, span := range dump.Spans {
		fmt.Printf("%-10s consumed=%-5v ok=%v\n", span.Name, span.Consumed, span.Ok)
	}
	fmt.Printf("memo hits: %d\n", dump.MemoHits)
	if dump.Error != "" {
		fmt.Printf("error: %s\n", dump.Error)
	}
	return nil
}
