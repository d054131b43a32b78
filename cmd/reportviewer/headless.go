package main

import (
	"fmt"

	"github.com/iafilius/EvalReportCharts/src/config"
	"github.com/iafilius/EvalReportCharts/src/export"
	"github.com/iafilius/EvalReportCharts/src/logging"
)

// RunHeadless writes the configured exports without creating a window: chart PNGs when a
// screenshots directory is set, the HTML report when an output path is set.
func RunHeadless(cfg config.Config) error {
	w, h := cfg.Surface.Width, cfg.Surface.Height
	if cfg.ScreenshotsDir != "" {
		paths, err := export.WriteScreenshots(cfg.ScreenshotsDir, w, h)
		if err != nil {
			return fmt.Errorf("screenshots: %w", err)
		}
		logging.Infof("wrote %d screenshots to %s", len(paths), cfg.ScreenshotsDir)
	}
	if cfg.HTMLOut != "" {
		if err := export.WriteHTML(cfg.HTMLOut, w, h); err != nil {
			return fmt.Errorf("html report: %w", err)
		}
		logging.Infof("wrote html report to %s", cfg.HTMLOut)
	}
	return nil
}
