package tetris

// GameStateType names the phase a session is in.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Piece    Piece
	Locked   int // Pieces locked this session
	Cleared  int // Rows removed this session
	Occupied int // Non-empty interior cells
	Grid     Grid
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Piece:    g.piece,
		Locked:   g.locked,
		Cleared:  g.cleared,
		Occupied: g.board.Occupied(),
		Grid:     g.board.View(),
		State:    state,
	}
}
