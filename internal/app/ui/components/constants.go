package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for animations
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the derived animation FPS
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsInterval is how often the viewer samples its own CPU and memory
	StatsInterval = 2 * time.Second

	// TipRotationTicks is how many ticks a footer tip stays visible
	TipRotationTicks = 100
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Layout constants
const (
	// ChromeHeight is the number of lines used by banner, filters, table header and footer
	ChromeHeight       = 9
	MinTableHeight     = 3
	LoggersPanelWidth  = 36
	DrilldownMinHeight = 6
	DefaultWidth       = 80
)

// Logs table column widths
const (
	ColWidthIndicator = 1
	ColWidthID        = 8
	ColWidthTimestamp = 24
	ColWidthLevel     = 5
	ColWidthLogger    = 18
	MessageMinWidth   = 20
)

// Indicator glyphs
const (
	IndicatorEmpty    = " "
	IndicatorSelected = "▸"
	IndicatorIncluded = "[x]"
	IndicatorExcluded = "[ ]"
	IndicatorPartial  = "[-]"
)

// MBToGB converts megabytes to gigabytes
const MBToGB = 1024
