package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/codes"
	"github.com/squid2010/qecsynth/correction"
)

func newTableCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the generators and syndrome table of a code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := codes.ByName(o.cfg.Code)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			k := code.StabilizerSize()
			l := circuit.NewLayout(code.Name())
			stab := l.AddQuantum("stab", k)
			logical := l.AddQuantum("log_qubit", 1).Qubit(0)
			word := codes.Codeword(logical, stab)

			fmt.Fprintf(w, "%s: k=%d\n", code.Name(), k)
			for i, g := range code.Generators() {
				fmt.Fprintf(w, "g%d %s\n", i, g)
			}
			table := code.SyndromeTable()
			for _, v := range table.Values() {
				qubits, corrs, _ := correction.Lookup(table, v, word)
				parts := make([]string, len(corrs))
				for i, corr := range corrs {
					parts[i] = fmt.Sprintf("%s %s", corr.Kind, qubits[i])
				}
				fmt.Fprintf(w, "%3d %0*b %s\n", v, k, v, strings.Join(parts, ", "))
			}
			return nil
		},
	}
}
