// Package ui provides the terminal interface for svitlo.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program styled with lipgloss. It shows one featured
// group's 24-hour timeline above a table of every group, both driven by the
// schedule document held in state.Store. Fetching, the refresh countdown and
// visibility handling all run through the Bubble Tea update loop, so no state
// is shared between goroutines.
//
// # Package Structure
//
//   - model.go: Model, Options, Init/Update/View and Run
//   - refresh.go: Refresh cycles, fetch commands and metrics/MQTT reporting
//   - input_handlers.go: Keyboard handling
//   - keys.go: Key bindings (bubbles/key)
//   - frame.go: Per-render state shared by the renderers
//   - header.go, tabs.go, timeline.go, overview.go: Screen regions
//   - help.go: Localized help overlay
//   - render.go: One-shot rendering for non-interactive output
//   - theme.go, style_helpers.go: Colors and lipgloss helpers
//
// # Event Flow
//
//  1. New marks the startup refresh as in flight; Init issues it with the first tick
//  2. Each tick counts the refresh countdown down unless a fetch is in flight
//  3. When the countdown reaches zero a fetch runs in a tea.Cmd
//  4. The result is ingested into the store (or recorded as a failure), the
//     countdown resets, and sections showing tomorrow fall back to today when
//     tomorrow is no longer visible
//  5. Metrics and MQTT reporting run in a separate command
//
// Losing terminal focus or suspending with ctrl+z records the moment the
// screen was hidden. On return after more than one poll interval the
// countdown stops, a single refresh runs, and the countdown restarts at the
// full interval once the result is applied.
//
// # Key Bindings
//
//   - tab/shift+tab: Switch focused section
//   - g/o: Focus the group or overview section
//   - a/p: Actual or predicted schedule for the focused section
//   - 1/2: Today or tomorrow for the focused section
//   - L: Cycle language
//   - T: Toggle theme
//   - r: Refresh now
//   - j/k, pgup/pgdown: Scroll
//   - h/?: Toggle help
//   - q/ctrl+c: Quit
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Fetcher:   client,
//		Store:     state.NewStore(cfg.Groups),
//		Featured:  cfg.FeaturedGroup,
//		PollEvery: cfg.PollEvery(),
//	})
package ui
