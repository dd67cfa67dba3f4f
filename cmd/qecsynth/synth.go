package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/squid2010/qecsynth/circuit"
)

func newSynthCmd(o *options) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a circuit and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				o.cfg.Format = format
			}
			r, err := o.synthesize()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return writeCircuit(w, r.Circuit, o.cfg.Format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, qasm, gob, cbor)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func writeCircuit(w io.Writer, c *circuit.Circuit, format string) error {
	switch format {
	case "text":
		c.Print(w)
		return nil
	case "qasm":
		return circuit.WriteQASM(w, c)
	case "gob":
		_, err := w.Write(c.Serialize())
		return err
	case "cbor":
		data, err := c.EncodeCBOR()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return errors.Errorf("unknown format %q", format)
}
