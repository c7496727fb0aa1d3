package screens

import (
	"fmt"
	"image"

	"github.com/rook-computer/scoreboard/internal/render"
	"github.com/rook-computer/scoreboard/internal/state"
)

const (
	settingsTitle     = "颜色设置界面"
	settingsHelp      = "↑/↓ 切换元素 | ←/→ 切换 R/G/B | +/- 调整值 | Enter 返回并保存"
	titleTop          = 30
	rowsTop           = 150
	rowHeight         = 80
	labelLeft         = 50
	previewOffset     = -200 // from the horizontal center
	previewWidth      = 50
	previewHeight     = 30
	previewBorder     = 2
	componentsOffset  = 50 // from the horizontal center
	componentSpacing  = 150
	helpBottomPadding = 50
)

// selectedComponent marks the RGB component being edited.
var selectedComponent = state.RGB{R: 255, G: 100, B: 100}

// SettingsScreen lists the editable colors with a preview swatch each. The
// selected row also shows its R, G and B values.
type SettingsScreen struct{}

func (SettingsScreen) Draw(d render.Drawer, st *state.State) {
	width, height := d.Size()
	d.Fill(state.Black.RGBA())

	d.DrawText(settingsTitle, width/2, titleTop, render.TextStyle{
		Color: state.White.RGBA(),
		Size:  MatchNameSize,
		Align: render.TextAlignCenter,
	})

	rows, elements := state.DisplayRows()
	for i, row := range rows {
		top := rowsTop + i*rowHeight
		selected := elements[i] == st.Cursor.Element
		c := st.Colors.Get(row.Key)

		labelColor := state.White
		if selected {
			labelColor = state.Yellow
		}
		d.DrawText(row.Label+":", labelLeft, top, render.TextStyle{Color: labelColor.RGBA(), Size: SmallTextSize})

		preview := image.Rect(0, 0, previewWidth, previewHeight).Add(image.Pt(width/2+previewOffset, top))
		d.FillRect(preview, c.RGBA())
		d.StrokeRect(preview, state.White.RGBA(), previewBorder)

		if !selected {
			continue
		}
		for j, name := range state.ComponentNames {
			compColor := state.White
			if j == st.Cursor.Component {
				compColor = selectedComponent
			}
			text := fmt.Sprintf("%s: %03d", name, c.Component(j))
			d.DrawText(text, width/2+componentsOffset+j*componentSpacing, top, render.TextStyle{Color: compColor.RGBA(), Size: SmallTextSize})
		}
	}

	d.DrawText(settingsHelp, width/2, height-helpBottomPadding, render.TextStyle{
		Color: state.Gray.RGBA(),
		Size:  SmallTextSize,
		Align: render.TextAlignCenter,
	})
}
