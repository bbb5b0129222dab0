package dweller

// Speed is the per-frame distance in pixels along each axis.
type Speed struct {
	Horizontal int
	Vertical   int
}

// Along returns the speed for the axis of d.
func (s Speed) Along(d Direction) int {
	switch d {
	case Left, Right:
		return s.Horizontal
	case Up, Down:
		return s.Vertical
	}
	return 0
}

// Player represents the player character.
type Player struct {
	home      Position
	position  Position
	direction Direction
	speed     Speed
	width     int
	height    int
}

// NewPlayer returns a player of the given sprite size standing at home.
func NewPlayer(home Position, width, height int, speed Speed) *Player {
	return &Player{
		home:      home,
		position:  home,
		direction: Right,
		speed:     speed,
		width:     width,
		height:    height,
	}
}

// Home returns the player's spawn position.
func (p *Player) Home() Position {
	return p.home
}

// Pos returns the player's current position.
func (p *Player) Pos() Position {
	return p.position
}

// SetPos sets the player's position explicitly.
func (p *Player) SetPos(pos Position) {
	p.position = pos
}

// Dir returns the direction the player faces.
func (p *Player) Dir() Direction {
	return p.direction
}

// SetDir turns the player. No keeps the current facing.
func (p *Player) SetDir(d Direction) {
	if d != No {
		p.direction = d
	}
}

// Speed returns the per-frame speed.
func (p *Player) Speed() Speed {
	return p.speed
}

// Size returns the sprite width and height in pixels.
func (p *Player) Size() (int, int) {
	return p.width, p.height
}

// Bounds returns the player's bounding rectangle at its current position.
func (p *Player) Bounds() Rect {
	return RectAt(p.position, p.width, p.height)
}

// Respawn moves the player back home.
func (p *Player) Respawn() {
	p.position = p.home
	p.direction = Right
}
