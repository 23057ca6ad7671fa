package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/internal/logging"
	"github.com/gopherchem/isospec/molecule"
)

func confSignatureLen(d *molecule.Descriptor) int {
	n := 0
	for _, dim := range d.IsotopeNumbers() {
		n += dim
	}
	return n
}

func newOrderedCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "ordered <formula>",
		Short: "Stream isotopologues of formula in decreasing probability order",
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

			cliCtx.Logger.Info("ordered enumeration started", logging.String("formula", args[0]), logging.Int("limit", limit))

			buf := make([]int32, confSignatureLen(d))
			g := generator.NewOrdered(d, cliCtx.Config.Generator.TabSize, cliCtx.Config.Generator.HashSize)

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

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of configurations to emit")
	return cmd
}
