package main

import (
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/hyperdice/pkg/analysis"
	"github.com/philipparndt/hyperdice/pkg/config"
	"github.com/philipparndt/hyperdice/pkg/polytope"
	"github.com/philipparndt/hyperdice/pkg/viewer"
)

type App struct {
	window   fyne.Window
	settings config.Settings
	renderer *viewer.DieRenderer
	info     *InfoPanel
}

type InfoPanel struct {
	angleLabel *widget.Label
	dieInfo    *widget.Label
}

func main() {
	configPath := "hyperdice.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	a := app.New()
	w := a.NewWindow("Hyperdice")

	settings, err := config.Load(configPath)
	if err != nil {
		settings = config.Default()
		dialog.ShowError(err, w)
	}

	appInstance := &App{
		window:   w,
		settings: settings,
	}

	kind, err := settings.Kind()
	if err != nil {
		kind = polytope.EightCell
	}
	appInstance.setupMainUI(kind)

	w.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))
	w.ShowAndRun()
}

func (a *App) setupMainUI(kind polytope.Kind) {
	die, err := polytope.New(kind)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	base, err := a.settings.Color()
	if err != nil {
		base = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	}

	a.info = &InfoPanel{
		angleLabel: widget.NewLabel(""),
		dieInfo:    widget.NewLabel(""),
	}
	a.info.angleLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.renderer = viewer.NewDieRenderer(die, a.settings.Distance, base)
	a.renderer.SetOnRotate(a.updateInfo)

	dieSelect := widget.NewSelect(kindNames(), func(name string) {
		a.switchDie(name)
	})
	dieSelect.SetSelected(kind.String())

	solidCheck := widget.NewCheck("Shaded cells", func(checked bool) {
		a.renderer.SetSolid(checked)
	})

	resetButton := widget.NewButton("Reset rotation", func() {
		a.renderer.Die().SetAngles(0, 0, 0)
		a.renderer.Die().Apply()
		a.updateInfo()
		a.renderer.Refresh()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate in the XW/YW planes\n" +
			"• Scroll to rotate in the ZW plane\n" +
			"• Pick a die kind from the list",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Die:"),
		dieSelect,
		widget.NewSeparator(),
		a.info.angleLabel,
		a.info.dieInfo,
		widget.NewSeparator(),
		solidCheck,
		resetButton,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)
	a.updateInfo()
}

// switchDie replaces the rendered die, carrying the rotation angles over
func (a *App) switchDie(name string) {
	kind, err := polytope.ParseKind(name)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if a.renderer != nil && a.renderer.Die().Kind == kind {
		return
	}
	xw, yw, zw := a.renderer.Die().Angles()
	a.setupMainUI(kind)
	a.renderer.Die().SetAngles(xw, yw, zw)
	a.renderer.Die().Apply()
	a.updateInfo()
}

func (a *App) updateInfo() {
	die := a.renderer.Die()
	a.info.angleLabel.SetText(fmt.Sprintf("W angle: %.1f deg", die.WAngleDegrees()))

	result := analysis.Analyze(die, die.Project(a.settings.Distance))
	a.info.dieInfo.SetText(fmt.Sprintf(
		"Vertices: %d\nEdges: %d\nCells: %d\n\nProjected size:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		result.VertexCount,
		result.EdgeCount,
		result.CellCount,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}

func kindNames() []string {
	names := make([]string, len(polytope.Kinds))
	for i, kind := range polytope.Kinds {
		names[i] = kind.String()
	}
	return names
}
