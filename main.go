package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/journey/common"
	"github.com/milk9111/journey/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "journey",
	Short:        "Walk the path and open the memories along it",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "settings file (default .journey.yaml)")
	flags.Bool("debug", false, "debug overlay, scene logging and hot reload")
	flags.Bool("watch", false, "reload the journey file when it changes")
	flags.String("journey", "", "journey file in prefabs/ or a path to one")
	flags.Bool("music", true, "start with music on")
	flags.String("assets", "", "directory photos, sprites and music are read from")
	flags.String("start", settings.StartMain, "scene to start on (main or island)")
	flags.Float64("start-fraction", 0, "fraction of the start scene's path to begin at")
	flags.Bool("fullscreen", false, "start fullscreen")

	for key, flag := range map[string]string{
		"debug":          "debug",
		"watch":          "watch",
		"journey":        "journey",
		"music":          "music",
		"assets_dir":     "assets",
		"start":          "start",
		"start_fraction": "start-fraction",
		"fullscreen":     "fullscreen",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatalf("bind flag %s: %v", flag, err)
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := settings.Init(cfgFile); err != nil {
		return err
	}
	s, err := settings.Load()
	if err != nil {
		return err
	}

	game, err := NewGame(s)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*s.WindowScale, common.BaseHeight*s.WindowScale)
	ebiten.SetWindowTitle(fmt.Sprintf("journey - %s", game.Title()))
	ebiten.SetFullscreen(s.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
