package main

import (
	"fmt"

	"github.com/milk9111/journey/paths"
	"github.com/milk9111/journey/prefabs"
	"github.com/spf13/cobra"
)

var (
	sampleCurve string
	sampleStep  float64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print position and tangent along a curve at a fixed arc-length step",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleCurve, "curve", string(paths.Main), "curve name")
	sampleCmd.Flags().Float64Var(&sampleStep, "step", 25, "arc-length between rows")
}

func runSample(cmd *cobra.Command, args []string) error {
	j, err := prefabs.LoadJourney(journeyFile)
	if err != nil {
		return err
	}
	c, ok := j.Registry.Curve(paths.Name(sampleCurve))
	if !ok {
		return fmt.Errorf("no curve %q in %s", sampleCurve, j.Spec.Name)
	}
	rows, err := sampleRows(c, sampleStep)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table([]string{"s", "x", "y", "dx", "dy", "seg"}, rows))
	return nil
}

// sampleRows walks c from 0 to its end in steps of step. The end of the
// curve is always the last row.
func sampleRows(c *paths.Curve, step float64) ([][]string, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", step)
	}
	total := c.TotalLength()
	var rows [][]string
	for s := 0.0; ; s += step {
		if s > total {
			s = total
		}
		p := c.PositionAt(s)
		t := c.TangentAt(s)
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", s),
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.2f", p.Y),
			fmt.Sprintf("%.3f", t.Dir.X),
			fmt.Sprintf("%.3f", t.Dir.Y),
			fmt.Sprintf("%d", t.Segment),
		})
		if s >= total {
			return rows, nil
		}
	}
}
