package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Status     string            `json:"status"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Castle     string `json:"castle,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(rec *Record) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(rec.Tags),
		Result:     rec.Result.Token(),
		Status:     rec.Result.Status.String(),
		PlyCount:   len(rec.Moves),
		InitialFEN: rec.StartFEN,
		FinalFEN:   rec.FinalFEN,
	}
	jg.Tags[chess.ResultTag] = jg.Result
	jg.Moves = convertMoveList(rec.Moves, rec.blackStarts())
	return jg
}

// WriteGameJSON writes a single game as indented JSON.
func WriteGameJSON(w io.Writer, rec *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(rec))
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if result[tag] == "" {
			result[tag] = chess.DefaultTagValue(tag)
		}
	}
	return result
}

// convertMoveList converts a move list to JSON moves with numbering.
func convertMoveList(moves []chess.Move, blackFirst bool) []JSONMove {
	if len(moves) == 0 {
		return nil
	}

	result := make([]JSONMove, 0, len(moves))
	moveNum := 1
	isWhite := !blackFirst
	for _, move := range moves {
		jm := JSONMove{
			MoveNumber: moveNum,
			Color:      colorName(isWhite),
			SAN:        move.String(),
			UCI:        move.Coordinates(),
			From:       move.From.String(),
			To:         move.To.String(),
		}
		if move.IsCastle() {
			jm.Castle = castleName(move.Type)
		}
		result = append(result, jm)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return result
}

// colorName returns "white" or "black" based on the boolean.
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

// castleName returns "kingside" or "queenside".
func castleName(t chess.MoveType) string {
	if t == chess.CastleKingSide {
		return "kingside"
	}
	return "queenside"
}
