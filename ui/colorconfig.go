package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"puyoterm/config"
	"puyoterm/notation"
	"puyoterm/types"
)

// ColorConfigUI lets the player pick field and wall colors with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func(err error)

	selectedField int
	selectedWall  int
	editingWall   bool
}

type namedColor struct {
	code int
	name string
}

// Dark tones so the puyo colors stand out.
var fieldColors = []namedColor{
	{232, "Black"},
	{233, "Coal"},
	{234, "Charcoal"},
	{235, "Graphite"},
	{236, "Dark Gray"},
	{17, "Navy Blue"},
	{18, "Deep Blue"},
	{22, "Dark Green"},
	{23, "Teal"},
	{52, "Dark Maroon"},
	{53, "Plum"},
	{54, "Purple"},
	{58, "Olive"},
	{94, "Saddle Brown"},
}

var wallColors = []namedColor{
	{240, "Gray"},
	{244, "Medium Gray"},
	{248, "Light Gray"},
	{252, "Silver"},
	{255, "White"},
	{109, "Steel Blue"},
	{67, "Slate"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{130, "Dark Orange"},
}

// previewStack is drawn in the preview box.
var previewStack = notation.MustParse(`
..G...
.RGB..
RRBBY.
GYYBYO
`, 4, 6)

// NewColorConfig creates the color configuration screen. onDone receives the
// result of saving the config, or nil when nothing was saved.
func NewColorConfig(cfg *config.Config, onDone func(err error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedField: cfg.Theme.Colors.Field,
		selectedWall:  cfg.Theme.Colors.Wall,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingWall {
			if index >= 0 && index < len(wallColors) {
				cc.selectedWall = wallColors[index].code
			}
		} else if index >= 0 && index < len(fieldColors) {
			cc.selectedField = fieldColors[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if !cc.editingWall {
			cc.editingWall = true
			cc.populateColorList()
			return
		}
		cc.apply()
		cc.editingWall = false
		cc.populateColorList()
		onDone(cc.cfg.Save())
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Field Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// apply copies the picked colors into the theme. The alternate field shade is
// the next palette index so the checkerboard stays subtle.
func (cc *ColorConfigUI) apply() {
	cc.cfg.Theme.Colors.Field = cc.selectedField
	cc.cfg.Theme.Colors.FieldAlt = altShade(cc.selectedField)
	cc.cfg.Theme.Colors.Wall = cc.selectedWall
}

func altShade(code int) int {
	if code >= 232 && code < 255 {
		return code + 1
	}
	return code
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	colors, selected := fieldColors, cc.selectedField
	cc.colorList.SetTitle(" Field Color (Tab: walls) ")
	if cc.editingWall {
		colors, selected = wallColors, cc.selectedWall
		cc.colorList.SetTitle(" Wall Color (Tab: field) ")
	}
	for i, c := range colors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range colors {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	w, h := previewStack.Width(), previewStack.Height()
	if width < w*2+8 || height < h+4 {
		return x, y, width, height
	}
	left := x + 3
	top := y + 1

	wallStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(cc.selectedWall))
	field := tcell.PaletteColor(cc.selectedField)
	fieldAlt := tcell.PaletteColor(altShade(cc.selectedField))
	for by := 0; by < h; by++ {
		screen.SetContent(left-1, top+by, '│', nil, wallStyle)
		screen.SetContent(left+w*2, top+by, '│', nil, wallStyle)
		for bx := 0; bx < w; bx++ {
			bg := field
			if (bx+by)%2 == 1 {
				bg = fieldAlt
			}
			cell := previewStack.Cell(bx, by)
			style := tcell.StyleDefault.Background(bg).Foreground(cellColor(cc.cfg, cell))
			r := cc.cfg.Theme.Symbols.Puyo
			if cell == types.Empty {
				style = style.Foreground(tcell.PaletteColor(cc.selectedWall))
				r = cc.cfg.Theme.Symbols.Empty
			}
			drawPuyoCell(screen, style, r, bx, by, left, top)
		}
	}
	screen.SetContent(left-1, top+h, '└', nil, wallStyle)
	for col := left; col < left+w*2; col++ {
		screen.SetContent(col, top+h, '─', nil, wallStyle)
	}
	screen.SetContent(left+w*2, top+h, '┘', nil, wallStyle)

	info := fmt.Sprintf("Field: %d  Wall: %d", cc.selectedField, cc.selectedWall)
	drawText(screen, left, top+h+2, info, tcell.StyleDefault)
	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between field and wall color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingWall = !cc.editingWall
	cc.populateColorList()
}

// Reset discards unsaved picks.
func (cc *ColorConfigUI) Reset() {
	cc.selectedField = cc.cfg.Theme.Colors.Field
	cc.selectedWall = cc.cfg.Theme.Colors.Wall
	cc.editingWall = false
	cc.populateColorList()
}
