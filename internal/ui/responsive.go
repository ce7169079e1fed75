package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColumnsForWidth returns the number of card columns for the available width
func ColumnsForWidth(width float32) int {
	switch {
	case width >= BreakpointLarge:
		return ColumnsWide
	case width >= BreakpointMedium:
		return ColumnsMedium
	default:
		return ColumnsNarrow
	}
}

// responsiveGrid lays cards out in rows whose column count follows the
// container width. Every cell in a row gets the height of the tallest card.
type responsiveGrid struct {
	singleColumn bool
	lastWidth    float32
}

func newResponsiveGrid(singleColumn bool) *responsiveGrid {
	return &responsiveGrid{singleColumn: singleColumn, lastWidth: WindowWidth}
}

// columns returns the column count for width
func (g *responsiveGrid) columns(width float32) int {
	if g.singleColumn {
		return ColumnsNarrow
	}
	return ColumnsForWidth(width)
}

// Layout places the visible objects
func (g *responsiveGrid) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	g.lastWidth = size.Width

	visible := visibleObjects(objects)
	cols := g.columns(size.Width)
	pad := theme.Padding()
	cellWidth := (size.Width - pad*float32(cols-1)) / float32(cols)

	var y float32
	for start := 0; start < len(visible); start += cols {
		row := visible[start:min(start+cols, len(visible))]
		rowHeight := rowMinHeight(row)

		for i, obj := range row {
			obj.Move(fyne.NewPos(float32(i)*(cellWidth+pad), y))
			obj.Resize(fyne.NewSize(cellWidth, rowHeight))
		}
		y += rowHeight + pad
	}
}

// MinSize keeps one card wide and as tall as the rows at the last known width
func (g *responsiveGrid) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	cols := g.columns(g.lastWidth)
	pad := theme.Padding()

	var width, height float32
	for start := 0; start < len(visible); start += cols {
		row := visible[start:min(start+cols, len(visible))]
		for _, obj := range row {
			width = max(width, obj.MinSize().Width)
		}
		height += rowMinHeight(row)
	}
	rows := (len(visible) + cols - 1) / cols
	height += pad * float32(rows-1)

	return fyne.NewSize(max(width, CardMinWidth), height)
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Visible() {
			visible = append(visible, obj)
		}
	}
	return visible
}

func rowMinHeight(row []fyne.CanvasObject) float32 {
	var height float32
	for _, obj := range row {
		height = max(height, obj.MinSize().Height)
	}
	return height
}
