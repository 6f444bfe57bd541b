// Package game tracks a single chess game: the current position, the moves
// accepted so far and the state the game is in.
package game

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/san"
)

// Game is a position plus the moves that led to it. A Game is not safe for
// concurrent use.
type Game struct {
	cfg        *config.Config
	board      *chess.Board
	startFEN   string
	firstMover chess.Colour
}

// New creates a game from the configured start position, or the standard
// start when cfg.StartFEN is empty. A nil cfg uses config.NewConfig().
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fen := cfg.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:        cfg,
		board:      board,
		startFEN:   engine.BoardToFEN(board),
		firstMover: board.ToMove,
	}, nil
}

// NewFromFEN creates a game from a position with default settings.
func NewFromFEN(fen string) (*Game, error) {
	return New(config.NewConfigBuilder().WithStartFEN(fen).Build())
}

// Make plays a move for the side to move. An illegal move returns an error
// wrapping errors.ErrIllegalMove and leaves the game unchanged.
func (g *Game) Make(move chess.Move) error {
	if err := engine.CheckMove(g.board, move); err != nil {
		g.reject(move.Coordinates(), err)
		return err
	}

	mover := g.board.ToMove
	text := san.Generate(g.board, move)
	if err := engine.ApplyMove(g.board, move.WithSAN(text)); err != nil {
		return err
	}

	g.logf(config.Commentary, "%s plays %s\n", mover, text)
	if g.IsCheckmate() || g.IsStalemate() {
		g.logf(config.Summary, "Game over after %d moves: %s\n", len(g.board.History), g.Result())
	}
	return nil
}

// MakeCoordinates plays a move given as square names, e.g. ("e2", "e4").
func (g *Game) MakeCoordinates(from, to string, moveType chess.MoveType) error {
	move, err := parseCoordinates(from, to, moveType)
	if err != nil {
		g.reject(from+to, err)
		return err
	}
	return g.Make(move)
}

// MakeSAN plays a move written in SAN. Resolution failures are returned as
// *san.Error.
func (g *Game) MakeSAN(text string) error {
	move, err := san.ResolveText(g.board, text)
	if err != nil {
		g.reject(text, err)
		return err
	}
	return g.Make(move)
}

// CanMove reports whether the side to move may play from-to.
func (g *Game) CanMove(from, to string, moveType chess.MoveType) bool {
	move, err := parseCoordinates(from, to, moveType)
	if err != nil {
		return false
	}
	return engine.Classify(g.board, move) == engine.NoViolation
}

// LegalMoves lists every move the side to move may play.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.board)
}

// Result classifies the current position.
func (g *Game) Result() engine.Result {
	return engine.GameResult(g.board)
}

// IsCheckmate reports whether the side to move has been mated.
func (g *Game) IsCheckmate() bool {
	return engine.IsCheckmate(g.board)
}

// IsStalemate reports whether the side to move has no move and is not in
// check.
func (g *Game) IsStalemate() bool {
	return engine.IsStalemate(g.board)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// History returns the accepted moves, oldest first.
func (g *Game) History() []chess.Move {
	history := make([]chess.Move, len(g.board.History))
	copy(history, g.board.History)
	return history
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// FEN returns the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// PGN returns the movetext of the game, e.g. "1. e4 e5 2. Nf3", or
// "1... Kd7 2. Ra7+" when Black moved first.
func (g *Game) PGN() string {
	return output.MoveListFrom(g.board.History, g.firstMover == chess.Black)
}

// Record snapshots the game for export.
func (g *Game) Record() *output.Record {
	tags := make(map[string]string, len(g.cfg.Tags))
	for k, v := range g.cfg.Tags {
		tags[k] = v
	}
	return &output.Record{
		Tags:     tags,
		StartFEN: g.startFEN,
		FinalFEN: g.FEN(),
		Moves:    g.History(),
		Result:   g.Result(),
	}
}

// WritePGN writes the game as PGN using the configured output settings.
func (g *Game) WritePGN(w io.Writer) error {
	pw := output.NewPGNWriter(w, g.cfg)
	if err := pw.WriteGame(g.Record()); err != nil {
		return err
	}
	return pw.Close()
}

// WriteJSON writes the game as a JSON object.
func (g *Game) WriteJSON(w io.Writer) error {
	jw := output.NewJSONWriterSingle(w)
	if err := jw.WriteGame(g.Record()); err != nil {
		return err
	}
	return jw.Close()
}

func (g *Game) reject(text string, err error) {
	g.logf(config.Commentary, "Rejected %s for %s: %v\n", text, g.board.ToMove, err)
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity >= level {
		fmt.Fprintf(g.cfg.LogFile, format, args...)
	}
}

func parseCoordinates(from, to string, moveType chess.MoveType) (chess.Move, error) {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return chess.Move{}, err
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.NewMove(fromSq, toSq, moveType), nil
}
