package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"karnaugh/internal/verify"
	"karnaugh/pkg/kmap"
)

// tableOptions are the flags shared by commands that take a function.
type tableOptions struct {
	vars      int
	minterms  []int
	dontCares []int
}

func (o *tableOptions) addFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.vars, "vars", "n", kmap.DefaultConfig().Vars, "number of variables (2-6)")
	fs.IntSliceVarP(&o.minterms, "minterms", "m", nil, "comma separated true minterms")
	fs.IntSliceVarP(&o.dontCares, "dont-cares", "d", nil, "comma separated don't-care minterms")
}

// minimizer builds a Minimizer loaded with the function. Minterms outside the
// map are dropped with a warning.
func (o *tableOptions) minimizer(cover string) (*kmap.Minimizer, error) {
	z, err := kmap.NewWithConfig(kmap.Config{Vars: o.vars, Cover: cover}, kmap.WithLogger(log.StandardLogger()))
	if err != nil {
		return nil, err
	}
	l := z.Layout()
	for _, set := range [][]int{o.minterms, o.dontCares} {
		for _, m := range set {
			if !l.Valid(m) {
				log.WithField("vars", l.Vars).Warnf("ignoring minterm %d outside 0..%d", m, l.Size()-1)
			}
		}
	}
	z.LoadMinterms(o.minterms, o.dontCares)
	return z, nil
}

type simplifyReport struct {
	Vars      int    `json:"vars"`
	Coverer   string `json:"coverer"`
	Minterms  []int  `json:"minterms"`
	DontCares []int  `json:"dontCares"`
	Verified  bool   `json:"verified,omitempty"`
	kmap.Result
}

func newSimplifyCmd() *cobra.Command {
	var (
		table   tableOptions
		cover   string
		check   bool
		output  string
		details bool
	)
	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Minimize a function to a sum of products",
		Long: `The simplify command groups the true and don't-care cells of a Karnaugh
        map into prime implicants and prints a covering sum of products.

        $ kmap-cli simplify -n 4 -m 0,1,2,3,8,9,10,11
        B'
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := table.minimizer(cover)
			if err != nil {
				return err
			}
			res, err := z.Simplify()
			if err != nil {
				return err
			}
			report := simplifyReport{
				Vars:      z.Layout().Vars,
				Coverer:   z.Coverer().Name(),
				Minterms:  z.Minterms(),
				DontCares: z.DontCares(),
				Result:    res,
			}
			if check {
				if err := verify.Check(z.Layout(), res, report.Minterms, report.DontCares); err != nil {
					return errors.Wrap(err, "verification failed")
				}
				log.Debug("cover verified")
				report.Verified = true
			}
			return write(cmd.OutOrStdout(), output, report, func(w io.Writer) error {
				if _, err := fmt.Fprintln(w, res.Expression); err != nil {
					return err
				}
				if !details {
					return nil
				}
				return writeImplicants(w, res)
			})
		},
	}
	table.addFlags(cmd.Flags())
	cmd.Flags().StringVar(&cover, "cover", kmap.GreedyName, fmt.Sprintf("cover strategy, one of: %v", kmap.CovererNames()))
	cmd.Flags().BoolVar(&check, "verify", false, "check the result with a SAT solver and a simulated truth table")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&details, "implicants", false, "list every prime implicant after the expression (text output)")
	return cmd
}

func writeImplicants(w io.Writer, res kmap.Result) error {
	for _, p := range res.PrimeImplicants {
		mark := " "
		if p.Essential {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-8s %v\n", mark, p.Term, p.Minterms); err != nil {
			return err
		}
	}
	return nil
}

func newCanonicalCmd() *cobra.Command {
	var table tableOptions
	cmd := &cobra.Command{
		Use:   "canonical",
		Short: "Print the unminimized sum of minterms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := table.minimizer(kmap.GreedyName)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), z.CanonicalSOP())
			return err
		},
	}
	table.addFlags(cmd.Flags())
	return cmd
}
