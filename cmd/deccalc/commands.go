package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/govalues/strdecimal"
	"github.com/govalues/strdecimal/internal/calc"
)

type Settings struct {
	Precision string
	Strict    bool
	JSON      bool
}

type result struct {
	Result strdecimal.Decimal `json:"result"`
}

func rootCommand() *cobra.Command {
	var (
		settings Settings
		ev       *calc.Evaluator
	)

	rootCmd := &cobra.Command{
		Use:           "deccalc",
		Short:         "Decimal calculator",
		Long:          "Evaluates decimal arithmetic without binary floating-point rounding errors",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			ev, err = calc.New(log.Logger, calc.Options{
				Precision: settings.Precision,
				Strict:    settings.Strict,
			})
			if err != nil {
				log.Error().Err(err).Msg("Bad value for --precision")
			}
			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&settings.Precision, "precision", "", "Digits after the decimal point of quotients and rounded values")
	rootCmd.PersistentFlags().BoolVar(&settings.Strict, "strict", false, "Reject operands that are not numbers instead of treating them as NaN")
	rootCmd.PersistentFlags().BoolVar(&settings.JSON, "json", false, "Print results as JSON")

	printDecimal := func(w io.Writer, d strdecimal.Decimal) error {
		if !settings.JSON {
			_, err := fmt.Fprintln(w, d.StringOr("null", "NaN"))
			return err
		}
		b, err := json.Marshal(result{Result: d})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	operands := func(args []string) ([]strdecimal.Decimal, error) {
		ds := make([]strdecimal.Decimal, len(args))
		for i, arg := range args {
			d, err := ev.Operand(arg)
			if err != nil {
				log.Error().Err(err).Str("operand", arg).Msg("Bad operand")
				return nil, err
			}
			ds[i] = d
		}
		return ds, nil
	}

	evalCmd := &cobra.Command{
		Use:     "eval EXPR...",
		Short:   "evaluate a prefix expression",
		Example: "  deccalc eval '* 10 + 1.23 4.56'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ev.Eval(strings.Join(args, " "))
			if err != nil {
				log.Error().Err(err).Msg("Failed to evaluate expression")
				return err
			}
			return printDecimal(cmd.OutOrStdout(), d)
		},
	}
	rootCmd.AddCommand(evalCmd)

	binaryOps := []struct {
		use, op, short string
	}{
		{"add", "+", "add two decimals"},
		{"sub", "-", "subtract the second decimal from the first"},
		{"mul", "*", "multiply two decimals"},
		{"div", "/", "divide the first decimal by the second"},
		{"pct", "%", "take a percentage, given as an integer, of the first decimal"},
	}
	for _, bo := range binaryOps {
		op := bo.op
		binaryCmd := &cobra.Command{
			Use:   bo.use + " A B",
			Short: bo.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := operands(args)
				if err != nil {
					return err
				}
				d, err := ev.Apply(op, ds[0], ds[1])
				if err != nil {
					log.Error().Err(err).Msg("Failed to compute")
					return err
				}
				return printDecimal(cmd.OutOrStdout(), d)
			},
		}
		rootCmd.AddCommand(binaryCmd)
	}

	unaryOps := []struct {
		use, short string
		fn         func(strdecimal.Decimal) strdecimal.Decimal
	}{
		{"abs", "print the absolute value of a decimal", strdecimal.Decimal.Abs},
		{"trim", "remove trailing zeros of a decimal", strdecimal.Decimal.Trim},
		{"round", "round a decimal half away from zero to --precision digits", func(d strdecimal.Decimal) strdecimal.Decimal { return ev.Round(d) }},
	}
	for _, uo := range unaryOps {
		fn := uo.fn
		unaryCmd := &cobra.Command{
			Use:   uo.use + " A",
			Short: uo.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := operands(args)
				if err != nil {
					return err
				}
				return printDecimal(cmd.OutOrStdout(), fn(ds[0]))
			},
		}
		rootCmd.AddCommand(unaryCmd)
	}

	cmpCmd := &cobra.Command{
		Use:   "cmp A B",
		Short: "compare two decimals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := operands(args)
			if err != nil {
				return err
			}
			c := calc.Compare(ds[0], ds[1])
			w := cmd.OutOrStdout()
			if settings.JSON {
				b, err := json.Marshal(c)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(b))
				return err
			}
			_, err = fmt.Fprintf(w, "eq=%v lt=%v lte=%v gt=%v gte=%v\n", c.Eq, c.Lt, c.Lte, c.Gt, c.Gte)
			return err
		},
	}
	rootCmd.AddCommand(cmpCmd)

	return rootCmd
}
