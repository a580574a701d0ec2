package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/event/rootstream"
	"github.com/decibelcooper/pionsel/event/toy"
)

var toyCmd = &cobra.Command{
	Use:   "toy",
	Short: "Write synthetic simulation and data trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("events")
		seed, _ := cmd.Flags().GetUint64("seed")
		mcOut, _ := cmd.Flags().GetString("mc")
		dataOut, _ := cmd.Flags().GetString("data")
		tree, _ := cmd.Flags().GetString("tree")

		g := toy.New(seed, toy.DefaultMix)
		for _, f := range []struct {
			path string
			kind event.Kind
		}{
			{mcOut, event.KindSimulation},
			{dataOut, event.KindData},
		} {
			if f.path == "" {
				continue
			}
			if err := rootstream.Write(f.path, tree, f.kind, g.Events(n, f.kind)); err != nil {
				return err
			}
			logger.Info("toy tree written",
				zap.String("path", f.path),
				zap.Stringer("kind", f.kind),
				zap.Int("events", n))
		}
		return nil
	},
}

func init() {
	toyCmd.Flags().IntP("events", "n", 10000, "events per file")
	toyCmd.Flags().Uint64("seed", 1, "random seed")
	toyCmd.Flags().String("mc", "toy_mc.root", "simulation output file")
	toyCmd.Flags().String("data", "toy_data.root", "data output file")
	toyCmd.Flags().String("tree", rootstream.DefaultTree, "event tree name")

	rootCmd.AddCommand(toyCmd)
}
