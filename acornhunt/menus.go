package acornhunt

import (
	"strconv"

	"github.com/phanxgames/grove"
)

// TitleState is the title screen with the play and help buttons.
type TitleState struct {
	grove.List
	env  *Env
	play *grove.Button
	help *grove.Button
}

func NewTitleState(env *Env) *TitleState {
	s := &TitleState{List: *grove.NewList(0, grove.NoID), env: env}
	s.Add(grove.NewSprite(env.Sheets.Sheet(SheetTitle), LayerBackground, grove.NoID))
	s.play = centeredButton(env, SheetButtonPlay, 600)
	s.Add(s.play)
	s.help = centeredButton(env, SheetButtonHelp, 700)
	s.Add(s.help)
	return s
}

func (s *TitleState) HandleInput(in grove.Input, dt float64) {
	s.List.HandleInput(in, dt)
	switch {
	case s.play.Pressed() || in.Pressed(grove.KeyConfirm):
		s.env.switchTo(s.env.Screens.LevelMenu)
	case s.help.Pressed():
		s.env.switchTo(s.env.Screens.Help)
	}
}

// HelpState explains the controls and returns to the title.
type HelpState struct {
	grove.List
	env  *Env
	back *grove.Button
}

func NewHelpState(env *Env) *HelpState {
	s := &HelpState{List: *grove.NewList(0, grove.NoID), env: env}
	s.Add(grove.NewSprite(env.Sheets.Sheet(SheetHelp), LayerBackground, grove.NoID))
	s.back = grove.NewButton(env.Sheets.Sheet(SheetButtonBack), LayerOverlays, grove.NoID)
	s.back.Position = grove.Vec2{X: 1160, Y: 700}
	s.Add(s.back)
	return s
}

func (s *HelpState) HandleInput(in grove.Input, dt float64) {
	s.List.HandleInput(in, dt)
	if s.back.Pressed() || in.Pressed(grove.KeyBack) || in.Pressed(grove.KeyConfirm) {
		s.env.switchTo(s.env.Screens.Title)
	}
}

// LevelMenuState lists the levels four to a row. Locked levels cannot be
// chosen.
type LevelMenuState struct {
	grove.List
	env     *Env
	playing *PlayingState
	back    *grove.Button
	buttons []*LevelButton
}

func NewLevelMenuState(env *Env, playing *PlayingState) *LevelMenuState {
	s := &LevelMenuState{List: *grove.NewList(0, grove.NoID), env: env, playing: playing}
	s.Add(grove.NewSprite(env.Sheets.Sheet(SheetLevelSelect), LayerBackground, grove.NoID))
	s.back = centeredButton(env, SheetButtonBack, 650)
	s.Add(s.back)
	for i := range env.Levels.Len() {
		b := NewLevelButton(env, i, LayerOverlays)
		row, col := i/4, i%4
		b.Position = grove.Vec2{
			X: float64(col)*(b.Width()+20) + 390,
			Y: float64(row)*(b.Height()+20) + 180,
		}
		s.Add(b)
		s.buttons = append(s.buttons, b)
	}
	return s
}

// SelectedLevel returns the index of the pressed level button, or -1.
func (s *LevelMenuState) SelectedLevel() int {
	for _, b := range s.buttons {
		if b.Pressed() {
			return b.Index()
		}
	}
	return -1
}

// latestUnlocked returns the last unlocked level, the one the confirm key
// starts.
func (s *LevelMenuState) latestUnlocked() int {
	for i := s.env.Levels.Len() - 1; i >= 0; i-- {
		if !s.env.Levels.Locked(i) {
			return i
		}
	}
	return -1
}

func (s *LevelMenuState) HandleInput(in grove.Input, dt float64) {
	s.List.HandleInput(in, dt)
	selected := s.SelectedLevel()
	if selected < 0 && in.Pressed(grove.KeyConfirm) {
		selected = s.latestUnlocked()
	}
	switch {
	case selected >= 0:
		s.playing.GoToLevel(selected)
		s.env.switchTo(s.env.Screens.Playing)
	case s.back.Pressed() || in.Pressed(grove.KeyBack):
		s.env.switchTo(s.env.Screens.Title)
	}
}

// LevelButton shows a level's number and whether it is locked, solved or
// still open.
type LevelButton struct {
	grove.List
	env      *Env
	index    int
	pressed  bool
	locked   *grove.Sprite
	solved   *grove.Sprite
	unsolved *grove.Sprite
}

func NewLevelButton(env *Env, index, layer int) *LevelButton {
	b := &LevelButton{List: *grove.NewList(layer, grove.NoID), env: env, index: index}
	b.locked = grove.NewSprite(env.Sheets.Sheet(SheetLevelLocked), LayerOverlays2, grove.NoID)
	b.solved = grove.NewSprite(env.Sheets.Sheet(SheetLevelSolved), LayerOverlays1, grove.NoID)
	b.unsolved = grove.NewSprite(env.Sheets.Sheet(SheetLevelUnsolved), LayerOverlays, grove.NoID)
	b.Add(b.locked)
	b.Add(b.solved)
	b.Add(b.unsolved)

	label := grove.NewLabel(grove.DefaultFont, 20, LayerOverlays2, grove.NoID)
	label.Text = strconv.Itoa(index + 1)
	label.Align = grove.AlignRight
	label.Position = grove.Vec2{X: b.solved.Width() - 10, Y: 10}
	b.Add(label)
	b.refresh()
	return b
}

func (b *LevelButton) Index() int      { return b.index }
func (b *LevelButton) Pressed() bool   { return b.pressed }
func (b *LevelButton) Width() float64  { return b.locked.Width() }
func (b *LevelButton) Height() float64 { return b.locked.Height() }
func (b *LevelButton) BoundingBox() grove.Rect {
	return b.locked.BoundingBox()
}

func (b *LevelButton) HandleInput(in grove.Input, _ float64) {
	if b.env.Levels.Locked(b.index) {
		b.pressed = false
		return
	}
	box := b.locked.BoundingBox()
	if in.TouchDevice() {
		b.pressed = b.Visible() && in.PointerDown(box)
	} else {
		b.pressed = b.Visible() && in.PointerPressed(box)
	}
}

// Update shows the sprite matching the level's progress.
func (b *LevelButton) Update(dt float64) {
	b.List.Update(dt)
	b.refresh()
}

func (b *LevelButton) refresh() {
	b.locked.SetVisible(b.env.Levels.Locked(b.index))
	b.solved.SetVisible(b.env.Levels.Solved(b.index))
	b.unsolved.SetVisible(!b.env.Levels.Solved(b.index))
}

// centeredButton creates a button centered horizontally at height y.
func centeredButton(env *Env, sheet string, y float64) *grove.Button {
	b := grove.NewButton(env.Sheets.Sheet(sheet), LayerOverlays, grove.NoID)
	b.Position = grove.Vec2{X: (env.Settings.ScreenWidth - b.Width()) / 2, Y: y}
	return b
}
