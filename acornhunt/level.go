package acornhunt

import (
	"github.com/phanxgames/grove"
	"go.uber.org/zap"
)

// Level is one playable level: background, tile field, acorns, exit, player,
// timer, hint and the quit and touch buttons.
type Level struct {
	grove.List
	env    *Env
	index  int
	acorns *grove.List
	quit   *grove.Button
	hint   *VisibilityTimer
}

// NewLevel builds level index of env.Levels. The catalog has been validated
// at load time, so construction cannot fail.
func NewLevel(env *Env, index int) *Level {
	data := env.Levels.At(index)
	l := &Level{List: *grove.NewList(0, grove.NoID), env: env, index: index}

	l.acorns = grove.NewList(LayerObjects, grove.NoID)
	l.Add(l.acorns)

	l.quit = grove.NewButton(env.Sheets.Sheet(SheetButtonQuit), LayerOverlays, grove.NoID)
	l.quit.Position = grove.Vec2{X: 25, Y: 10}
	l.Add(l.quit)

	backgrounds := grove.NewList(LayerBackground, grove.NoID)
	backgrounds.Add(grove.NewSprite(env.Sheets.Sheet(BackgroundSheet(data.Background)), LayerBackground, grove.NoID))
	l.Add(backgrounds)

	timerBackground := grove.NewSprite(env.Sheets.Sheet(SheetTimer), LayerOverlays, grove.NoID)
	timerBackground.Position = grove.Vec2{X: 1320, Y: 10}
	l.Add(timerBackground)

	timer := NewTimer(env.Settings.TimeLimit, LayerOverlays1, IDTimer)
	timer.Position = grove.Vec2{X: 1335, Y: 33}
	l.Add(timer)

	l.loadHint(data.Hint)
	if env.Touch {
		l.loadTouchButtons()
	}
	l.loadTiles(data)
	l.Reset()
	return l
}

// Index returns the position of the level in the catalog.
func (l *Level) Index() int { return l.index }

func (l *Level) loadHint(hint string) {
	field := grove.NewList(LayerOverlays, grove.NoID)
	frame := grove.NewSprite(l.env.Sheets.Sheet(SheetFrameHint), LayerOverlays1, grove.NoID)
	field.Position = grove.Vec2{X: (l.env.Settings.ScreenWidth - frame.Width()) / 2, Y: 10}
	field.Add(frame)

	text := grove.NewLabel(grove.DefaultFont, 18, LayerOverlays2, grove.NoID)
	text.Text = hint
	text.Position = grove.Vec2{X: 200, Y: 25}
	field.Add(text)
	l.Add(field)

	l.hint = NewVisibilityTimer(field, l.env.Settings.HintSeconds, LayerOverlays, IDHintTimer)
	l.Add(l.hint)
}

func (l *Level) loadTouchButtons() {
	sheet := l.env.Sheets.Sheet(SheetButtonsPlayer)
	left := grove.NewButton(sheet, LayerOverlays, IDButtonWalkLeft)
	left.Position = grove.Vec2{X: 10, Y: 500}
	l.Add(left)

	right := grove.NewButton(sheet, LayerOverlays, IDButtonWalkRight)
	right.Position = grove.Vec2{X: right.Width() + 20, Y: 500}
	right.SetFrame(1)
	l.Add(right)

	jump := grove.NewButton(sheet, LayerOverlays, IDButtonJump)
	jump.Position = grove.Vec2{X: l.env.Settings.ScreenWidth - jump.Width() - 10, Y: 500}
	jump.SetFrame(2)
	l.Add(jump)
}

func (l *Level) loadTiles(data *LevelData) {
	s := l.env.Settings
	tiles := NewTileField(data.Rows(), data.Columns(), s.CellWidth, s.CellHeight)
	l.Add(tiles)
	for row, line := range data.Tiles {
		for col, code := range []byte(line) {
			t := l.loadTile(code)
			tiles.AddAt(t, col, row)
			l.loadObject(code, tiles.Position.Add(tiles.AnchorPosition(t)))
		}
	}
}

func (l *Level) loadTile(code byte) *Tile {
	sheets := l.env.Sheets
	switch code {
	case '-':
		return NewTile(sheets.Sheet(SheetPlatform), TilePlatform, false, false)
	case '+':
		return NewTile(sheets.Sheet(SheetPlatformHot), TilePlatform, true, false)
	case '@':
		return NewTile(sheets.Sheet(SheetPlatformIce), TilePlatform, false, true)
	case '#':
		return NewTile(sheets.Sheet(SheetWall), TileSolid, false, false)
	case '^':
		return NewTile(sheets.Sheet(SheetWallHot), TileSolid, true, false)
	case '*':
		return NewTile(sheets.Sheet(SheetWallIce), TileSolid, false, true)
	}
	return NewTile(nil, TileBackground, false, false)
}

// loadObject places the player, the exit or an acorn in the cell whose
// top-left corner is cell.
func (l *Level) loadObject(code byte, cell grove.Vec2) {
	s := l.env.Settings
	bottomLeft := cell.Add(grove.Vec2{Y: s.CellHeight})
	switch code {
	case 'X':
		exit := grove.NewSprite(l.env.Sheets.Sheet(SheetGoal), LayerObjects, IDExit)
		exit.Position = bottomLeft
		exit.Origin = grove.Vec2{Y: exit.Height()}
		l.Add(exit)
	case 'A':
		a := NewAcorn(l.env, LayerObjects)
		a.Position = cell.Add(grove.Vec2{X: s.CellWidth / 2, Y: s.CellHeight/2 - 10})
		l.acorns.Add(a)
	case '1':
		l.Add(NewPlayer(l.env, bottomLeft, LayerObjects, IDPlayer))
	}
}

// Player returns the level's player.
func (l *Level) Player() *Player {
	p, _ := grove.FindAs[*Player](l, IDPlayer)
	return p
}

// Timer returns the level's timer.
func (l *Level) Timer() *Timer {
	t, _ := grove.FindAs[*Timer](l, IDTimer)
	return t
}

// Acorns returns the list of acorns.
func (l *Level) Acorns() *grove.List { return l.acorns }

// Completed reports whether every acorn is collected and the player touches
// the exit.
func (l *Level) Completed() bool {
	exit, ok := grove.FindAs[*grove.Sprite](l, IDExit)
	player := l.Player()
	if !ok || player == nil || !exit.CollidesWith(player) {
		return false
	}
	for _, c := range l.acorns.Children() {
		if a, ok := c.(*Acorn); ok && !a.Collected() {
			return false
		}
	}
	return true
}

// Draw draws the level, then the acorns still popping on top of it.
func (l *Level) Draw(r grove.Renderer) {
	l.List.Draw(r)
	for _, c := range l.acorns.Children() {
		if a, ok := c.(*Acorn); ok {
			a.DrawPop(r)
		}
	}
}

// GameOver reports whether the player died or the time ran out.
func (l *Level) GameOver() bool {
	return !l.Player().Alive() || l.Timer().Expired()
}

// HandleInput dispatches input and leaves for the level menu on quit.
func (l *Level) HandleInput(in grove.Input, dt float64) {
	l.List.HandleInput(in, dt)
	if !l.quit.Pressed() && !in.Pressed(grove.KeyBack) {
		return
	}
	l.Reset()
	l.env.switchTo(l.env.Screens.LevelMenu)
}

// Update advances the level and applies its rules: the timer stops when the
// player dies, the player explodes when the time is up, and completing the
// level while the timer runs finishes it and marks it solved.
func (l *Level) Update(dt float64) {
	l.List.Update(dt)
	timer := l.Timer()
	player := l.Player()
	if !player.Alive() {
		timer.Running = false
	}
	if timer.Expired() {
		player.Explode()
	}
	if timer.Running && l.Completed() {
		player.LevelFinished()
		timer.Running = false
		l.env.Events.PublishSolved(l.index)
		l.env.Log.Info("level solved", zap.Int("level", l.index+1), zap.Float64("time_left", timer.Left()))
	}
}

// Reset restarts the level and shows the hint again.
func (l *Level) Reset() {
	l.List.Reset()
	l.hint.StartVisible()
}
