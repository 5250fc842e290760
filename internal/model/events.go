package model

type EventType string

const (
	EventPieceMoved        EventType = "piece_moved"
	EventPieceCaptured     EventType = "piece_captured"
	EventCastlePerformed   EventType = "castle_performed"
	EventPromotionPending  EventType = "promotion_pending"
	EventPromotionResolved EventType = "promotion_resolved"
	EventTurnChanged       EventType = "turn_changed"
	EventGameEnded         EventType = "game_ended"
)

// Event is an outbound notification for presentation collaborators. Only the
// fields relevant to Type are set.
type Event struct {
	Type     EventType   `json:"type"`
	From     *Position   `json:"from,omitempty"`
	To       *Position   `json:"to,omitempty"`
	Square   *Position   `json:"square,omitempty"`
	Kind     PieceKind   `json:"kind,omitempty"`
	Color    Color       `json:"color,omitempty"`
	Captured PieceKind   `json:"captured,omitempty"`
	Choices  []PieceKind `json:"choices,omitempty"`
	Outcome  *Outcome    `json:"outcome,omitempty"`
	Winner   string      `json:"winner,omitempty"`
}

func pieceMoved(from, to Position, captured *Piece) Event {
	e := Event{Type: EventPieceMoved, From: &from, To: &to}
	if captured != nil {
		e.Captured = captured.Kind
	}
	return e
}

func pieceCaptured(kind PieceKind, by Color) Event {
	return Event{Type: EventPieceCaptured, Kind: kind, Color: by}
}

func castlePerformed(rookFrom, rookTo Position) Event {
	return Event{Type: EventCastlePerformed, From: &rookFrom, To: &rookTo}
}

func promotionPending(square Position, color Color) Event {
	choices := PromotionChoices()
	return Event{Type: EventPromotionPending, Square: &square, Color: color, Choices: choices}
}

func promotionResolved(square Position, kind PieceKind) Event {
	return Event{Type: EventPromotionResolved, Square: &square, Kind: kind}
}

func turnChanged(color Color) Event {
	return Event{Type: EventTurnChanged, Color: color}
}

func gameEnded(outcome Outcome, winner string) Event {
	return Event{Type: EventGameEnded, Outcome: &outcome, Winner: winner}
}
