package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/internal/logging"
	"github.com/gopherchem/isospec/molecule"
)

func newThresholdCmd() *cobra.Command {
	var threshold float64
	var absolute bool

	cmd := &cobra.Command{
		Use:   "threshold <formula>",
		Short: "Stream every isotopologue of formula whose probability meets a cutoff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			d, err := molecule.NewFromFormula(args[0])
			if err != nil {
				return fmt.Errorf("isospec: %w", err)
			}

			cliCtx.Logger.Info("threshold enumeration started",
				logging.String("formula", args[0]),
				logging.Float64("threshold", threshold),
				logging.Bool("absolute", absolute))

			buf := make([]int32, confSignatureLen(d))
			g, err := generator.NewThreshold(d, threshold, absolute, cliCtx.Config.Generator.TabSize, cliCtx.Config.Generator.HashSize)
			if err != nil {
				return fmt.Errorf("isospec: %w", err)
			}

			table := &tableWriter{}
			for g.Advance() {
				g.WriteConfSignature(buf)
				row := resultRow{LProb: g.LProb(), Mass: g.Mass(), EProb: g.EProb(), Conf: append([]int32(nil), buf...)}
				if cliCtx.Format == "table" {
					table.add(row)
				} else if err := writeNDJSON(cmd.OutOrStdout(), row); err != nil {
					return err
				}
			}
			if cliCtx.Format == "table" {
				table.flush(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0.001, "probability cutoff")
	cmd.Flags().BoolVar(&absolute, "absolute", true, "treat threshold as an absolute probability rather than relative to the mode")
	return cmd
}
