package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/prefabs"
)

var (
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor = color.NRGBA{A: 200}
	btnColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	btnHover   = color.NRGBA{R: 0x55, G: 0x44, B: 0x22, A: 0xff}
)

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func menuButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(btnColor)
	hover := imageui.NewNineSliceColor(btnHover)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Hover: hover, Pressed: hover}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
	)
}

func menuLabel(text string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// menu centres a vertical panel on screen; fill adds its widgets.
func menu(fill func(panel *widget.Container)) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	fill(panel)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the Esc menu.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	return menu(func(panel *widget.Container) {
		panel.AddChild(menuLabel("Paused", face))
		panel.AddChild(menuButton("Continue", face, func() { g.setPaused(false) }))
		panel.AddChild(menuButton("Quit", face, func() { g.quit = true }))
	})
}

// NewUpgradeUI lists the pending upgrade choices.
func NewUpgradeUI(g *Game, choices []prefabs.UpgradeSpec) *ebitenui.UI {
	face := uiFace()
	return menu(func(panel *widget.Container) {
		panel.AddChild(menuLabel("Choose an upgrade", face))
		for _, up := range choices {
			label := up.Title
			if label == "" {
				label = up.Name
			}
			if up.Description != "" {
				label += ": " + up.Description
			}
			panel.AddChild(menuButton(label, face, func() { g.chooseUpgrade(up.Name) }))
		}
		panel.AddChild(menuButton("Later", face, g.closeUpgrades))
	})
}
