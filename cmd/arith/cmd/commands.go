// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cockroachdb/arith"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var evalShort = map[arith.Op]string{
	arith.OpAdd: "Sum the operands",
	arith.OpSub: "Subtract every later operand from the first",
	arith.OpMul: "Multiply the operands",
	arith.OpQuo: "Divide the first operand by every later operand, rounding each quotient",
}

func newEvalCmd(o *options, op arith.Op) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.String() + " <number>...",
		Short: evalShort[op],
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.resolvePolicy(cmd)
			if err != nil {
				return err
			}
			operands, err := parseDecimals(args)
			if err != nil {
				return err
			}
			d, err := p.EvalDecimal(op, operands[0], operands[1:]...)
			if err != nil {
				o.logger.Error("evaluation failed",
					slog.String("op", op.String()),
					slog.String("policy", p.String()),
					slog.Any("error", err))
				return err
			}
			o.logger.Debug("evaluated",
				slog.String("op", op.String()),
				slog.String("policy", p.String()),
				slog.Int("operands", len(operands)),
				slog.String("result", d.String()))
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	addPolicyFlags(cmd, o)
	return cmd
}

func parseDecimals(args []string) ([]*arith.Decimal, error) {
	ds := make([]*arith.Decimal, len(args))
	for i, a := range args {
		d, err := arith.NewFromString(a)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d", i+1)
		}
		ds[i] = d
	}
	return ds, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(arith.ErrInvalidArgument, "%q is not a number", s)
	}
	return f, nil
}

func newRoundCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round <number>",
		Short: "Round a number to the policy scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.resolvePolicy(cmd)
			if err != nil {
				return err
			}
			x, err := arith.NewFromString(args[0])
			if err != nil {
				return err
			}
			d := new(arith.Decimal)
			if err := p.Round(d, x); err != nil {
				return err
			}
			o.logger.Debug("rounded",
				slog.String("policy", p.String()),
				slog.String("result", d.String()))
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	addPolicyFlags(cmd, o)
	return cmd
}

func newCmpCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Print true if a >= b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			b, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), arith.Compare(a, b))
			return nil
		},
	}
}

func newFmtCmd(o *options) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "fmt [number]",
		Short: "Format a number for display; a missing number formats as zero",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v *float64
			if len(args) == 1 {
				f, err := parseFloat(args[0])
				if err != nil {
					return err
				}
				v = &f
			}
			s, err := arith.FormatPattern(v, pattern)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", arith.DefaultPattern, "display pattern, such as #,##0.00")
	return cmd
}

func newPoliciesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the available named policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			def, err := cfg.Policy("")
			if err != nil {
				return err
			}
			for _, name := range cfg.Names() {
				p, err := cfg.Policy(name)
				if err != nil {
					return err
				}
				mark := " "
				if name == cfg.Default || (cfg.Default == "" && name == "default") {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", mark, name, p)
			}
			o.logger.Debug("listed policies", slog.String("default", def.String()))
			return nil
		},
	}
}
