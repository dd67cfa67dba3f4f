package main

import (
	"fmt"
	"sort"

	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"

	"github.com/squid2010/qecsynth/sim"
)

func newRunCmd(o *options) *cobra.Command {
	var shots, workers int
	var seed int64
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Synthesize a circuit and sample its result register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("shots") {
				o.cfg.Shots = shots
			}
			if flags.Changed("seed") {
				o.cfg.Seed = seed
			}
			if flags.Changed("workers") {
				o.cfg.Workers = workers
			}
			r, err := o.synthesize()
			if err != nil {
				return err
			}
			if r.Circuit.NbQubits > sim.MaxQubits {
				return fmt.Errorf("%d qubits exceed the simulator limit of %d", r.Circuit.NbQubits, sim.MaxQubits)
			}
			counts, err := sim.Sample(cmd.Context(), r.Circuit, r.Output, o.cfg.Shots, o.cfg.Seed, o.cfg.Workers)
			if err != nil {
				return err
			}
			log := logger.Logger()
			log.Info().Int("shots", o.cfg.Shots).Int("outcomes", len(counts)).Msg("sampled")

			keys := make([]string, 0, len(counts))
			for k := range counts {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", k, counts[k])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&shots, "shots", 100, "number of executions")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first shot")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent shots")
	return cmd
}
