package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/internal/logging"
	"github.com/gopherchem/isospec/molecule"
)

func newLayeredCmd() *cobra.Command {
	var delta float64
	var targetProb float64
	var limit int

	cmd := &cobra.Command{
		Use:   "layered <formula>",
		Short: "Stream isotopologues of formula layer by layer, expanding the probability band",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if delta == 0 {
				delta = cliCtx.Config.Generator.Delta
			}

			d, err := molecule.NewFromFormula(args[0])
			if err != nil {
				return fmt.Errorf("isospec: %w", err)
			}

			cliCtx.Logger.Info("layered enumeration started",
				logging.String("formula", args[0]), logging.Float64("delta", delta))

			buf := make([]int32, confSignatureLen(d))
			g := generator.NewLayered(d, delta, cliCtx.Config.Generator.TabSize, cliCtx.Config.Generator.HashSize)
			if targetProb > 0 {
				g.SetTargetProbability(targetProb)
			}

			table := &tableWriter{}
			count := 0
			for count < limit && g.Advance() {
				g.WriteConfSignature(buf)
				row := resultRow{LProb: g.LProb(), Mass: g.Mass(), EProb: g.EProb(), Conf: append([]int32(nil), buf...)}
				if cliCtx.Format == "table" {
					table.add(row)
				} else if err := writeNDJSON(cmd.OutOrStdout(), row); err != nil {
					return err
				}
				count++
			}
			if cliCtx.Format == "table" {
				table.flush(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&delta, "delta", 0, "log-probability width of each layer's band (0 = use config default)")
	cmd.Flags().Float64Var(&targetProb, "target-prob", 0, "stop once cumulative emitted probability reaches this value (0 = disabled)")
	cmd.Flags().IntVar(&limit, "limit", 100000, "maximum number of configurations to emit")
	return cmd
}
