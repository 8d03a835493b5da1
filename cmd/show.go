package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/roadmap"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print a saved roadmap as JSON (the latest one by default)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		a := newApplication(context.Background(), false)

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		if err := a.show(path); err != nil {
			if errors.Is(err, roadmap.ErrNoRoadmaps) {
				a.logger.Fatal("nothing to show", zap.Error(err), zap.String("hint", "generate a roadmap first"))
			}
			a.logger.Fatal("showing roadmap", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
