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
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/arith"
	"github.com/cockroachdb/arith/internal/config"
	"github.com/cockroachdb/arith/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	verbose    bool

	policy   string
	scale    int
	rounding string

	logger *slog.Logger
}

// NewRootCmd builds the arith command tree writing results to out and logs
// and errors to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &options{logger: slog.Default()}
	root := &cobra.Command{
		Use:   "arith",
		Short: "Exact decimal arithmetic",
		Long: `arith folds decimal operands left to right with one operation and
rounds the result with a precision policy: a scale (fractional digits kept)
and a rounding rule (half_up, half_down, half_even, up, down, ceiling, floor).

Negative operands must follow "--", as in: arith sub -- -1.5 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.logger = logging.Setup(errOut, "arith", o.verbose)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&o.configFile, "config", "", "policy config file (.toml, .yaml)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log debug output")

	for op := arith.Op(0); op.Valid(); op++ {
		root.AddCommand(newEvalCmd(o, op))
	}
	root.AddCommand(
		newRoundCmd(o),
		newCmpCmd(o),
		newFmtCmd(o),
		newPoliciesCmd(o),
	)
	return root
}

// Execute runs the arith command with the process arguments.
func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}

func addPolicyFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().StringVarP(&o.policy, "policy", "p", "", "named policy from --config (default, four, eight, ...)")
	cmd.Flags().IntVarP(&o.scale, "scale", "s", 0, "fractional digits to keep; overrides the policy")
	cmd.Flags().StringVarP(&o.rounding, "rounding", "r", "", "rounding rule; overrides the policy")
}

func (o *options) loadConfig() (*config.Config, error) {
	if o.configFile == "" {
		return config.Builtin(), nil
	}
	return config.Load(o.configFile)
}

// resolvePolicy returns the named policy with any --scale or --rounding
// override applied.
func (o *options) resolvePolicy(cmd *cobra.Command) (arith.Policy, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return arith.Policy{}, err
	}
	p, err := cfg.Policy(o.policy)
	if err != nil {
		return arith.Policy{}, err
	}
	if cmd.Flags().Changed("scale") {
		if p, err = p.WithScale(o.scale); err != nil {
			return arith.Policy{}, errors.Wrap(err, "--scale")
		}
	}
	if cmd.Flags().Changed("rounding") {
		r, err := arith.ParseRoundingRule(o.rounding)
		if err != nil {
			return arith.Policy{}, errors.Wrap(err, "--rounding")
		}
		if p, err = p.WithRounding(r); err != nil {
			return arith.Policy{}, err
		}
	}
	return p, nil
}
