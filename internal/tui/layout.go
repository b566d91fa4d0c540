package tui

// stackBelowWidth is the terminal width under which the side panel moves
// below the main column.
const stackBelowWidth = 100

// PanelDimensions holds calculated dimensions for each region of the dashboard.
type PanelDimensions struct {
	// MainWidth is the width of the main column (gauges, tracks, route).
	MainWidth int
	// SideWidth is the width of the side column (countdown, control panel).
	SideWidth int
	// ContentHeight is the height available between header and footer.
	ContentHeight int
	// Stacked is true when the side column is rendered under the main one.
	Stacked bool
}

// LayoutManager calculates region dimensions based on terminal size.
type LayoutManager struct {
	totalWidth   int
	totalHeight  int
	headerHeight int
	footerHeight int
}

// NewLayoutManager creates a new LayoutManager with the given terminal dimensions.
func NewLayoutManager(width, height int) *LayoutManager {
	return &LayoutManager{
		totalWidth:   width,
		totalHeight:  height,
		headerHeight: headerHeight,
		footerHeight: 1,
	}
}

// SetSize updates the terminal dimensions.
func (l *LayoutManager) SetSize(width, height int) {
	l.totalWidth = width
	l.totalHeight = height
}

// SetFooterHeight updates the height reserved for the footer.
func (l *LayoutManager) SetFooterHeight(height int) {
	l.footerHeight = height
}

// Calculate returns the region dimensions for the current terminal size.
// Wide terminals split 2/3 main and 1/3 side.
func (l *LayoutManager) Calculate() PanelDimensions {
	const (
		minMainWidth = 40
		minSideWidth = 30
	)

	contentHeight := l.totalHeight - l.headerHeight - l.footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if l.totalWidth < stackBelowWidth {
		w := max(l.totalWidth, minSideWidth)
		return PanelDimensions{
			MainWidth:     w,
			SideWidth:     w,
			ContentHeight: contentHeight,
			Stacked:       true,
		}
	}

	mainWidth := l.totalWidth * 2 / 3
	sideWidth := l.totalWidth - mainWidth
	if sideWidth < minSideWidth {
		sideWidth = minSideWidth
		mainWidth = max(l.totalWidth-sideWidth, minMainWidth)
	}

	return PanelDimensions{
		MainWidth:     mainWidth,
		SideWidth:     sideWidth,
		ContentHeight: contentHeight,
	}
}
