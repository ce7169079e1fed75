package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestColumnsForWidth(t *testing.T) {
	tests := []struct {
		width float32
		want  int
	}{
		{320, ColumnsNarrow},
		{767, ColumnsNarrow},
		{768, ColumnsMedium},
		{1023, ColumnsMedium},
		{1024, ColumnsWide},
		{1920, ColumnsWide},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnsForWidth(tt.width), "width %v", tt.width)
	}
}

func newCell(height float32) *canvas.Rectangle {
	rect := canvas.NewRectangle(nil)
	rect.SetMinSize(fyne.NewSize(100, height))
	return rect
}

func TestResponsiveGrid_Layout(t *testing.T) {
	test.NewTempApp(t)

	grid := newResponsiveGrid(false)
	cells := []fyne.CanvasObject{newCell(50), newCell(80), newCell(60), newCell(40)}

	grid.Layout(cells, fyne.NewSize(1200, 500))

	// Three columns: first row shares the tallest height
	assert.Equal(t, float32(0), cells[0].Position().Y)
	assert.Equal(t, cells[0].Position().Y, cells[2].Position().Y)
	assert.Equal(t, float32(80), cells[0].Size().Height)
	assert.Greater(t, cells[1].Position().X, cells[0].Position().X)

	// Fourth card wraps to the second row
	assert.Equal(t, float32(0), cells[3].Position().X)
	assert.Greater(t, cells[3].Position().Y, float32(80))
}

func TestResponsiveGrid_NarrowStacks(t *testing.T) {
	test.NewTempApp(t)

	grid := newResponsiveGrid(false)
	cells := []fyne.CanvasObject{newCell(50), newCell(80)}

	grid.Layout(cells, fyne.NewSize(400, 500))

	assert.Equal(t, float32(400), cells[0].Size().Width)
	assert.Equal(t, float32(0), cells[1].Position().X)
	assert.Greater(t, cells[1].Position().Y, cells[0].Position().Y)
}

func TestResponsiveGrid_SingleColumn(t *testing.T) {
	test.NewTempApp(t)

	grid := newResponsiveGrid(true)
	cells := []fyne.CanvasObject{newCell(50), newCell(50)}

	grid.Layout(cells, fyne.NewSize(1600, 500))
	assert.Equal(t, float32(1600), cells[0].Size().Width)
	assert.Greater(t, cells[1].Position().Y, float32(0))
}

func TestResponsiveGrid_MinSizeSkipsHidden(t *testing.T) {
	test.NewTempApp(t)

	grid := newResponsiveGrid(false)
	hidden := newCell(500)
	hidden.Hide()

	size := grid.MinSize([]fyne.CanvasObject{newCell(50), hidden})
	assert.Equal(t, float32(50), size.Height)
	assert.Equal(t, CardMinWidth, size.Width)

	assert.Equal(t, fyne.NewSize(0, 0), grid.MinSize(nil))
}
