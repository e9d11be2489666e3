package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PlayerSelectUI holds the ebitenui interface for choosing players and inputs
type PlayerSelectUI struct {
	UI     *ebitenui.UI
	Select *components.PlayerSelectData

	// Callbacks
	OnSelectInput func(index int)
	OnAddPlayer   func()
	OnStartGame   func()
	OnGoBack      func()

	// Widget references for updates
	nameLabels    []*widget.Label
	inputLabels   []*widget.Label
	selectButtons []*widget.Button
	addButton     *widget.Button
	startButton   *widget.Button
	statusLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Roster version the widgets last showed
	shownVersion int
	initialized  bool
}

// NewPlayerSelectUI creates the player select UI with ebitenui
func NewPlayerSelectUI(ps *components.PlayerSelectData, onSelectInput func(int), onAddPlayer, onStartGame, onGoBack func()) *PlayerSelectUI {
	pui := &PlayerSelectUI{
		Select:        ps,
		OnSelectInput: onSelectInput,
		OnAddPlayer:   onAddPlayer,
		OnStartGame:   onStartGame,
		OnGoBack:      onGoBack,
		shownVersion:  -1,
	}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PlayerSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	pui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (pui *PlayerSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PLAYERS", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(pui.buildRowsContainer())
	contentContainer.AddChild(pui.buildButtonsContainer())

	pui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(pui.statusLabel)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Esc: back", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 170, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildRowsContainer lays out one row per possible player. Rows past the
// current roster stay blank until a player is added.
func (pui *PlayerSelectUI) buildRowsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for i := 0; i < cfg.PlayerSelect.MaxPlayers; i++ {
		container.AddChild(pui.buildPlayerRow(i))
	}

	return container
}

func (pui *PlayerSelectUI) buildPlayerRow(index int) *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{false, true, false}, nil),
			widget.GridLayoutOpts.Padding(&padding),
			widget.GridLayoutOpts.Spacing(12, 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(520, 32),
		),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: cfg.Player.Colors[index%len(cfg.Player.Colors)],
		}),
	)
	pui.nameLabels = append(pui.nameLabels, nameLabel)
	row.AddChild(nameLabel)

	inputLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	pui.inputLabels = append(pui.inputLabels, inputLabel)
	row.AddChild(inputLabel)

	idx := index
	selectButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(170, 26),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text("Select Input", &pui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if pui.OnSelectInput != nil {
				pui.OnSelectInput(idx)
			}
		}),
	)
	pui.selectButtons = append(pui.selectButtons, selectButton)
	row.AddChild(selectButton)

	return row
}

func (pui *PlayerSelectUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text("Back", &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if pui.OnGoBack != nil {
				pui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	pui.addButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text("Add Player", &pui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if pui.OnAddPlayer != nil {
				pui.OnAddPlayer()
			}
		}),
	)
	container.AddChild(pui.addButton)

	pui.startButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(pui.startButtonImage()),
		widget.ButtonOpts.Text("Start Game", &pui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if systems.CanStartRound(pui.Select) && pui.OnStartGame != nil {
				pui.OnStartGame()
			}
		}),
	)
	container.AddChild(pui.startButton)

	return container
}

func (pui *PlayerSelectUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (pui *PlayerSelectUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes every widget from the roster
func (pui *PlayerSelectUI) UpdateUI() {
	ps := pui.Select

	for i := range pui.nameLabels {
		if i >= len(ps.Players) {
			pui.nameLabels[i].Label = ""
			pui.inputLabels[i].Label = ""
			if textWidget := pui.selectButtons[i].Text(); textWidget != nil {
				textWidget.Label = ""
			}
			pui.selectButtons[i].GetWidget().Disabled = true
			continue
		}

		player := ps.Players[i]
		pui.nameLabels[i].Label = fmt.Sprintf("%d. %s", i+1, player.DisplayName)
		pui.inputLabels[i].Label = systems.InputLabel(ps, player.UniqueID)

		if textWidget := pui.selectButtons[i].Text(); textWidget != nil {
			if ps.Selecting == i {
				textWidget.Label = "<press any button>"
			} else {
				textWidget.Label = "Select Input"
			}
		}
		pui.selectButtons[i].GetWidget().Disabled = false
	}

	if pui.addButton != nil {
		pui.addButton.GetWidget().Disabled = len(ps.Players) >= cfg.PlayerSelect.MaxPlayers
	}

	if pui.startButton != nil {
		canStart := systems.CanStartRound(ps)
		pui.startButton.GetWidget().Disabled = !canStart

		if pui.statusLabel != nil {
			if canStart {
				pui.statusLabel.Label = ""
			} else {
				pui.statusLabel.Label = "Choose an input for at least one player"
			}
		}
	}

	pui.shownVersion = ps.Version
}

// Update calls the UI's Update method and refreshes widgets after roster changes
func (pui *PlayerSelectUI) Update() {
	pui.UI.Update()
	// Widgets are only valid after the first UI update
	if !pui.initialized || pui.shownVersion != pui.Select.Version {
		pui.initialized = true
		pui.UpdateUI()
	}
}
