// Package tui provides the terminal dashboard for oulab.
//
// The dashboard shows:
//   - Overall and per-phase progress gauges
//   - The China to Jeddah route with the bus position
//   - Bus preparation and operational tracks, with details for tracks in progress
//   - Today's date and the countdown to launch
//   - A control panel of sliders that override the displayed percentages
//
// The countdown is recomputed by a single scheduler task. The task is
// restarted when the view starts, when the language changes, and when the
// configuration is reloaded, and stopped when the view closes.
//
// Usage:
//
//	program, app := tui.NewProgram(tui.Options{
//	    Target:   target,
//	    Locale:   i18n.Arabic,
//	    Progress: progress.New(cfg.InitialProgress()),
//	})
//	defer app.Close()
//	_, err := program.Run()
//
// Keys: arrows or hjkl move and adjust, tab switches between sliders and
// tracks, enter opens details, e/a switch language, r replays the
// animations, q quits.
package tui
