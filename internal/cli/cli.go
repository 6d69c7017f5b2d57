// Package cli defines the triorng command surface and flag validation.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"triorng-core/cascade"

	"triorng/internal/version"
)

// Options holds all CLI flags after parsing.
type Options struct {
	Bits       int
	Cascade    string // comma-separated stage names, any order
	Seed       int64
	SeedSet    bool // --seed was given explicitly
	Verbose    bool
	Output     string // text | json
	ConfigPath string
	InitConfig string // write a default config file here and exit
}

// SeedPtr returns the optional seed: nil when --seed was not given.
func (o *Options) SeedPtr() *int64 {
	if !o.SeedSet {
		return nil
	}
	s := o.Seed
	return &s
}

// Stages parses the cascade flag into stage values. Selection order does not
// matter; execution always follows the canonical pipeline order.
func (o *Options) Stages() ([]cascade.Stage, error) {
	parts := strings.Split(o.Cascade, ",")
	stages := make([]cascade.Stage, 0, len(parts))
	for _, p := range parts {
		s, err := cascade.ParseStage(p)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return cascade.Normalize(stages)
}

// UsageError marks a problem the user can fix on the command line; the app
// maps it to the usage exit code.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// New builds the root command. run receives the parsed options; parse and
// validation failures never reach it.
func New(run func(cmd *cobra.Command, opts *Options) error) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:     "triorng",
		Short:   "Triple-cascade quantum-simulation random bit generator",
		Long: `triorng chains up to three entropy stages (a cryptographic byte source
and two simulated quantum circuits) so that each stage's output shapes the
next stage's circuit. Stages always execute in the canonical order
openssl -> qiskit -> cirq regardless of how --cascade lists them.

The quantum stages are classical simulations: they add structure, not
physical entropy. Seeded runs are reproducible bit-for-bit.`,
		Example: `  triorng --bits 64
  triorng --bits 128 --cascade openssl,qiskit,cirq
  triorng --bits 32 --cascade qiskit,cirq --verbose
  triorng --bits 64 --seed 12345 --output json`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SeedSet = cmd.Flags().Changed("seed")
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Bits, "bits", "b", 64, "number of random bits to generate")
	f.StringVarP(&opts.Cascade, "cascade", "c", "openssl,qiskit,cirq", "comma-separated cascade stages")
	f.Int64VarP(&opts.Seed, "seed", "s", 0, "seed for reproducible generation")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "report intermediate outputs of each stage")
	f.StringVarP(&opts.Output, "output", "o", "text", "output format: text | json")
	f.StringVar(&opts.ConfigPath, "config", "", "YAML config file with flag defaults")
	f.StringVar(&opts.InitConfig, "init-config", "", "write a default config file to this path and exit")

	return cmd
}

// Changed reports whether the named flag was set explicitly.
func Changed(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Changed(name)
}
