package main

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"
	"go-hep.org/x/hep/hplot"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/decibelcooper/pionsel"
	"github.com/decibelcooper/pionsel/analysis"
	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/histstore"
)

var popColors = map[event.Population]color.Color{
	event.Signal: color.RGBA{R: 220, G: 50, B: 47, A: 255},
	event.QE:     color.RGBA{R: 38, G: 139, B: 210, A: 255},
	event.RES:    color.RGBA{R: 133, G: 153, B: 0, A: 255},
	event.DIS:    color.RGBA{R: 181, G: 137, B: 0, A: 255},
	event.MEC:    color.RGBA{R: 108, G: 113, B: 196, A: 255},
	event.NC:     color.RGBA{R: 42, G: 161, B: 152, A: 255},
	event.Other:  color.RGBA{R: 147, G: 161, B: 161, A: 255},
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot one stage and variable from a histogram file",
	Long: `Plot stacks the simulated populations of one cascade stage and overlays
the data with statistical error bars.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		stage, _ := cmd.Flags().GetString("stage")
		variable, _ := cmd.Flags().GetString("var")
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")
		return stackPlot(in, stage, variable, title, out)
	},
}

func init() {
	plotCmd.Flags().String("in", "pionsel.root", "histogram file written by run")
	plotCmd.Flags().String("stage", analysis.TruthStage, "cascade stage")
	plotCmd.Flags().String("var", analysis.VarRecoT, "variable")
	plotCmd.Flags().String("out", "out.png", "output file")
	plotCmd.Flags().String("title", "", "plot title")

	rootCmd.AddCommand(plotCmd)
}

func stackPlot(in, stage, variable, title, out string) (err error) {
	r, err := histstore.Open(in)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, r.Close()) }()

	p := hplot.New()
	p.Title.Text = title
	if p.Title.Text == "" {
		p.Title.Text = stage
	}
	p.X.Label.Text = variable
	p.X.Tick.Marker = pionsel.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Label.Text = "events"

	// backgrounds at the bottom of the stack, signal on top
	pops := append(event.Backgrounds(), event.Signal)
	stack := make([]*hplot.H1D, 0, len(pops))
	for _, pop := range pops {
		h, err := r.Get(analysis.HistName(stage, pop.String(), variable))
		if err != nil {
			return err
		}
		l := hplot.NewH1D(h.H1D(), hplot.WithHInfo(hplot.HInfoNone))
		l.FillColor = popColors[pop]
		l.LineStyle.Color = popColors[pop]
		stack = append(stack, l)
	}
	p.Add(hplot.NewHStack(stack, hplot.WithHInfo(hplot.HInfoNone)))
	for i := len(stack) - 1; i >= 0; i-- {
		p.Legend.Add(pops[i].String(), stack[i])
	}

	data, err := r.Get(analysis.HistName(stage, event.Data.String(), variable))
	if err != nil {
		return err
	}
	if data.Total() > 0 {
		d := hplot.NewH1D(data.H1D(),
			hplot.WithHInfo(hplot.HInfoNone),
			hplot.WithYErrBars(true),
			hplot.WithGlyphStyle(draw.GlyphStyle{
				Shape:  draw.CircleGlyph{},
				Color:  color.Black,
				Radius: vg.Points(2),
			}),
		)
		d.LineStyle.Width = 0
		p.Add(d)
		p.Legend.Add(event.Data.String(), d)
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("plot: save %q: %w", out, err)
	}
	logger.Info("plot written", zap.String("path", out), zap.String("stage", stage), zap.String("var", variable))
	return nil
}
