// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants shared across pages.
const (
	SidebarWidth = 16

	HeaderHeight = 1
	FooterHeight = 1
	TabBarHeight = 2

	ContentPaddingH = 2
	ContentPaddingV = 1

	LaneMinWidth  = 22
	CardLineWidth = 18

	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
)

// ContentSize returns the drawable area next to the sidebar.
func ContentSize(termWidth, termHeight int) (w, h int) {
	w = termWidth - SidebarWidth - ContentPaddingH*2
	h = termHeight - HeaderHeight - FooterHeight - ContentPaddingV*2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// LaneWidth splits the content width across the four board lanes.
func LaneWidth(contentWidth int) int {
	w := contentWidth/4 - 2
	if w < LaneMinWidth {
		w = LaneMinWidth
	}
	return w
}
