package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clarete/pcomb/examples/arithmetic"
	"github.com/clarete/pcomb/examples/json"
)

var runGrammar string
var runExpr string

var runCmd = &cobra.Command{
	Use:     "run",
	GroupID: "grammar",
	Short:   "Parse (and for arithmetic, evaluate) an input string",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := newLogger(cfg)
		defer logger.Sync() //nolint:errcheck

		grammar := runGrammar
		if grammar == "" {
			grammar = cfg.GetString("grammar")
		}

		switch grammar {
		case "arithmetic":
			result, err := arithmetic.Eval(runExpr)
			if err != nil {
				logger.Error("parse failed", zap.Error(err))
				return err
			}
			fmt.Println(result)
		case "json":
			value, err := json.Parse(runExpr)
			if err != nil {
				logger.Error("parse failed", zap.Error(err))
				return err
			}
			fmt.Printf("%+v\n", value)
		default:
			return fmt.Errorf("run: unknown grammar %q (want arithmetic or json)", grammar)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runGrammar, "grammar", "", "arithmetic or json (default from config)")
	runCmd.Flags().StringVar(&runExpr, "expr", "", "the input string to parse")
	runCmd.MarkFlagRequired("expr") //nolint:errcheck
}
