package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the overlay cards.
var MenuColors = struct {
	Border      tcell.Color // card frame
	BorderFocus tcell.Color // card frame while it holds focus
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color // title decoration and option bullets
	Alert       tcell.Color // game over title
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(109),
	CardBG:      tcell.PaletteColor(236),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(226),
	Alert:       tcell.PaletteColor(196),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(46),
	Unselected:  tcell.PaletteColor(245),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
