package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"karnaugh/pkg/kmap"
)

type grayReport struct {
	Bits  int      `json:"bits"`
	Codes []string `json:"codes"`
}

func newGrayCmd() *cobra.Command {
	var (
		bits   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "gray",
		Short: "Print the Gray code used to label map rows and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bits < 0 || bits > kmap.MaxVars-kmap.MaxVars/2 {
				return errors.Errorf("bits must be between 0 and %d, got %d", kmap.MaxVars-kmap.MaxVars/2, bits)
			}
			codes := kmap.GrayCode(bits)
			return write(cmd.OutOrStdout(), output, grayReport{Bits: bits, Codes: codes}, func(w io.Writer) error {
				for i, code := range codes {
					if _, err := fmt.Fprintf(w, "%d\t%s\n", i, code); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&bits, "bits", "b", 2, "code width in bits")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}
