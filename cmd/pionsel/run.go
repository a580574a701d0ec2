package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/decibelcooper/pionsel"
	"github.com/decibelcooper/pionsel/analysis"
	"github.com/decibelcooper/pionsel/config"
	"github.com/decibelcooper/pionsel/cuttable"
	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/event/rootstream"
	"github.com/decibelcooper/pionsel/histstore"
)

var beamFlag = pionsel.NewFloatList()

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cut cascade over simulation and data trees",
	Long: `Run reads every --mc and --data ROOT file, reconstructs each event,
applies the cut cascade and writes the per-stage histograms to --out. The
cut table is printed and, with --db, stored in SQLite under --label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
		}
		if beamFlag.Changed() {
			viper.Set("beam", beamFlag.Values)
		}
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return runAnalysis(cmd.Context(), cmd, cfg)
	},
}

func init() {
	runCmd.Flags().StringSlice("mc", nil, "simulation ROOT files")
	runCmd.Flags().StringSlice("data", nil, "data ROOT files")
	runCmd.Flags().String("out", "pionsel.root", "output ROOT file for histograms")
	runCmd.Flags().String("db", "", "SQLite file to store the cut table in")
	runCmd.Flags().String("label", "nominal", "run label in the cut table store")
	runCmd.Flags().String("profile", "", "write a CPU profile to this directory")
	runCmd.Flags().Var(beamFlag, "beam", "beam direction x,y,z")
	runCmd.Flags().Int("workers", 1, "number of files processed concurrently")
	runCmd.Flags().Float64("scale", 1, "exposure normalization applied to simulation")
	runCmd.Flags().Bool("kalman", false, "use the Kalman track estimators")
	runCmd.Flags().Bool("exhaustive", false, "evaluate every cut instead of stopping at the first failure")
	runCmd.Flags().String("tree", rootstream.DefaultTree, "event tree name")

	for _, key := range []string{"workers", "scale", "kalman", "exhaustive", "tree"} {
		_ = viper.BindPFlag(key, runCmd.Flags().Lookup(key))
	}

	rootCmd.AddCommand(runCmd)
}

func runAnalysis(ctx context.Context, cmd *cobra.Command, cfg config.Config) (err error) {
	mc, _ := cmd.Flags().GetStringSlice("mc")
	data, _ := cmd.Flags().GetStringSlice("data")
	if len(mc) == 0 {
		return fmt.Errorf("run: at least one --mc file is required")
	}

	a, err := analysis.New(cfg, analysis.WithLogger(logger))
	if err != nil {
		return err
	}

	var files []*rootstream.Stream
	defer func() {
		for _, f := range files {
			err = multierr.Append(err, f.Close())
		}
	}()
	open := func(paths []string, kind event.Kind) error {
		for _, p := range paths {
			s, err := rootstream.Open(p, cfg.Tree, kind)
			if err != nil {
				return err
			}
			logger.Info("opened event tree",
				zap.String("path", p),
				zap.Stringer("kind", kind),
				zap.Int64("entries", s.Entries()))
			files = append(files, s)
		}
		return nil
	}
	if err := open(mc, event.KindSimulation); err != nil {
		return err
	}
	if err := open(data, event.KindData); err != nil {
		return err
	}

	streams := make([]event.Stream, len(files))
	for i, f := range files {
		streams[i] = f
	}

	var res *analysis.Result
	if cfg.Workers > 1 {
		res, err = a.RunPartitioned(ctx, streams, cfg.Workers)
	} else {
		res, err = a.Run(ctx, streams...)
	}
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if err := writeHists(out, res); err != nil {
		return err
	}

	sums, err := res.Summaries()
	if err != nil {
		return err
	}
	for _, s := range sums {
		fmt.Fprintln(os.Stdout, s)
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		label, _ := cmd.Flags().GetString("label")
		if err := saveRows(ctx, db, label, res.Rows); err != nil {
			return err
		}
	}
	return nil
}

func writeHists(path string, res *analysis.Result) (err error) {
	w, err := histstore.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, w.Close()) }()

	if err := w.PutAll(res.Hists); err != nil {
		return err
	}
	logger.Info("histograms written", zap.String("path", path), zap.Int("count", len(res.Hists)))
	return nil
}

func saveRows(ctx context.Context, path, label string, rows []cuttable.Row) (err error) {
	st, err := cuttable.NewStore(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, st.Close()) }()

	id, err := st.Save(ctx, label, rows)
	if err != nil {
		return err
	}
	logger.Info("cut table stored", zap.String("db", path), zap.String("label", label), zap.String("run", id))
	return nil
}
