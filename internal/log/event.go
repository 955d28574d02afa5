package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventPhaseChange EventType = iota
	EventNewTurn
	EventDraw
	EventShuffle
	EventPlay
	EventMoney
	EventActions
	EventBuys
	EventGain
	EventBuy
	EventTrash
	EventDiscard
	EventTopDeck
	EventReveal
	EventSetAside
	EventAddToHand
	EventReaction
	EventAttackBlocked
	EventTrigger
	EventSupplyEmpty
	EventCleanup
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChange:
		return "PhaseChange"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventPlay:
		return "Play"
	case EventMoney:
		return "Money"
	case EventActions:
		return "Actions"
	case EventBuys:
		return "Buys"
	case EventGain:
		return "Gain"
	case EventBuy:
		return "Buy"
	case EventTrash:
		return "Trash"
	case EventDiscard:
		return "Discard"
	case EventTopDeck:
		return "TopDeck"
	case EventReveal:
		return "Reveal"
	case EventSetAside:
		return "SetAside"
	case EventAddToHand:
		return "AddToHand"
	case EventReaction:
		return "Reaction"
	case EventAttackBlocked:
		return "AttackBlocked"
	case EventTrigger:
		return "Trigger"
	case EventSupplyEmpty:
		return "SupplyEmpty"
	case EventCleanup:
		return "Cleanup"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Action Phase")
	Player  int       // acting or affected player (seat index)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
