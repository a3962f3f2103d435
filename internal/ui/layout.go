package ui

import "time"

// Sizes of the fixed screen regions.
const (
	headerLines = 1
	footerLines = 1
	bannerLines = 1

	// timelineBarWidth is the width of one hour bar; split hours use half each.
	timelineBarWidth = 24

	// overviewNameWidth is the width of the group column in the overview table.
	overviewNameWidth = 6

	// overviewCellWidth is the width of one hour cell; split hours use one
	// character per half.
	overviewCellWidth = 2
)

// DefaultTickInterval drives the countdown and the current-hour highlight.
const DefaultTickInterval = time.Second
