package main

import (
	"fmt"

	"github.com/milk9111/journey/checkpoint"
	"github.com/milk9111/journey/prefabs"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a journey file and summarize its curves and checkpoints",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	name := journeyFile
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		name = prefabs.DefaultJourney
	}

	spec, err := prefabs.LoadStrictSpec[prefabs.JourneySpec](name)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), styleBad.Render("invalid"), err)
		return err
	}
	j, err := prefabs.BuildJourney(&spec)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), styleBad.Render("invalid"), err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report(name, j))
	return nil
}

// report renders the curve and checkpoint tables of a built journey.
func report(name string, j *prefabs.Journey) string {
	title := styleTitle.Render(j.Spec.Name) + styleMuted.Render(" ("+name+")")

	var curves [][]string
	for _, n := range j.Registry.Names() {
		c, _ := j.Registry.Curve(n)
		curves = append(curves, []string{
			string(n),
			fmt.Sprintf("%d", c.Sampler.Len()),
			fmt.Sprintf("%.1f", c.TotalLength()),
			fmt.Sprintf("%d", len(j.Index.ForCurve(n))),
		})
	}

	var cps [][]string
	for _, c := range j.Index.All() {
		cps = append(cps, checkpointRow(c))
	}

	return title + "\n\n" +
		table([]string{"curve", "samples", "length", "checkpoints"}, curves) + "\n\n" +
		table([]string{"id", "curve", "s", "x", "y", "kind", "title"}, cps) + "\n\n" +
		styleOK.Render(fmt.Sprintf("ok: %d curves, %d checkpoints, %d signs, %d markers",
			len(curves), j.Index.Len(), len(j.Signs), len(j.Markers)))
}

func checkpointRow(c *checkpoint.Checkpoint) []string {
	return []string{
		c.ID,
		string(c.Curve),
		fmt.Sprintf("%.1f", c.S),
		fmt.Sprintf("%.1f", c.Pos.X),
		fmt.Sprintf("%.1f", c.Pos.Y),
		string(c.Payload.Kind()),
		c.Payload.DisplayTitle(),
	}
}
