// Package output renders finished or ongoing games as PGN and JSON.
package output

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Record is a snapshot of one game for export.
type Record struct {
	// Header tags supplied by the caller.
	Tags map[string]string

	// Position the game started from and its current position.
	StartFEN string
	FinalFEN string

	// Accepted moves, oldest first, each carrying its SAN.
	Moves []chess.Move

	// Classification of the current position.
	Result engine.Result
}

// blackStarts reports whether the record's first move is Black's.
func (r *Record) blackStarts() bool {
	board, err := engine.NewBoardFromFEN(r.StartFEN)
	return err == nil && board.ToMove == chess.Black
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// MoveList renders a history as PGN movetext, e.g. "1. e4 e5 2. Nf3".
// White is assumed to have moved first. An empty history gives "".
func MoveList(history []chess.Move) string {
	return MoveListFrom(history, false)
}

// MoveListFrom is MoveList for a history whose first move may be Black's,
// in which case it opens with "1...".
func MoveListFrom(history []chess.Move, blackFirst bool) string {
	return strings.Join(moveTokens(history, blackFirst, true, true), " ")
}

// moveTokens splits movetext into numbers and SAN tokens.
func moveTokens(moves []chess.Move, blackFirst, keepNumbers, keepChecks bool) []string {
	tokens := make([]string, 0, len(moves)*3/2+1)
	moveNum := 1
	isWhite := !blackFirst

	for i, move := range moves {
		if keepNumbers {
			if isWhite {
				tokens = append(tokens, fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				tokens = append(tokens, fmt.Sprintf("%d...", moveNum))
			}
		}

		text := move.String()
		if !keepChecks {
			text = strings.TrimRight(text, "+#")
		}
		tokens = append(tokens, text)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return tokens
}

// WritePGN writes a record as a PGN game: tags, a blank line, the
// movetext and a trailing blank line.
func WritePGN(w io.Writer, rec *Record, cfg *config.OutputConfig) error {
	var buf bytes.Buffer

	if cfg.TagFormat != config.NoTags {
		outputTags(&buf, rec, cfg)
		buf.WriteByte('\n')
	}
	outputMoves(&buf, rec, cfg)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

// outputTags writes the seven tag roster, the setup tags for a non-standard
// start and, unless restricted, every other tag in name order.
func outputTags(w io.Writer, rec *Record, cfg *config.OutputConfig) {
	for _, tag := range chess.SevenTagRoster {
		value := rec.Tags[tag]
		if tag == chess.ResultTag {
			value = rec.Result.Token()
		}
		if value == "" {
			value = chess.DefaultTagValue(tag)
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	if rec.StartFEN != "" && rec.StartFEN != engine.InitialFEN {
		fmt.Fprintf(w, "[%s \"1\"]\n", chess.SetUpTag)
		fmt.Fprintf(w, "[%s \"%s\"]\n", chess.FENTag, escapeTagValue(rec.StartFEN))
	}

	if cfg.TagFormat == config.SevenTagRoster {
		return
	}

	names := make([]string, 0, len(rec.Tags))
	for tag := range rec.Tags {
		if !chess.IsSevenTagRosterTag(tag) && tag != chess.SetUpTag && tag != chess.FENTag {
			names = append(names, tag)
		}
	}
	sort.Strings(names)
	for _, tag := range names {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(rec.Tags[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the movetext wrapped at the configured line length.
func outputMoves(w io.Writer, rec *Record, cfg *config.OutputConfig) {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	for _, token := range moveTokens(rec.Moves, rec.blackStarts(), cfg.KeepMoveNumbers, cfg.KeepChecks) {
		ow.Write(token)
	}

	if cfg.KeepResults {
		ow.Write(rec.Result.Token())
	}

	ow.NewLine()
}
