package game

type EventType int

const (
	EventFoodEaten EventType = iota
	EventPowerUpCollected
	EventCollision
	EventLevelUp
	EventLifeLost
	EventEffectExpired
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "food-eaten"
	case EventPowerUpCollected:
		return "powerup-collected"
	case EventCollision:
		return "collision"
	case EventLevelUp:
		return "level-up"
	case EventLifeLost:
		return "life-lost"
	case EventEffectExpired:
		return "effect-expired"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event carries the payload for one domain event. Only the fields that
// belong to the Type are set.
type Event struct {
	Type      EventType
	Pos       Position      // FoodEaten
	Points    int           // FoodEaten
	PowerUp   PowerUp       // PowerUpCollected
	Collision CollisionKind // Collision
	Level     int           // LevelUp
	Lives     int           // LifeLost
	Effect    PowerUpKind   // EffectExpired
	Stats     Stats         // GameOver
}

type EventHandler func(Event)

type subscriber struct {
	id int
	fn EventHandler
}

// EventBus delivers events synchronously, in subscription order, within the
// same tick that produced them. No buffering, no goroutines.
type EventBus struct {
	nextID   int
	handlers map[EventType][]subscriber
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]subscriber)}
}

// Subscribe registers a handler and returns its unsubscribe func.
// Removal builds a fresh slice rather than shifting in place, so a handler
// can unsubscribe during delivery without disturbing the Emit in progress.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) func() {
	eb.nextID++
	id := eb.nextID
	eb.handlers[t] = append(eb.handlers[t], subscriber{id: id, fn: fn})
	return func() {
		subs := eb.handlers[t]
		kept := make([]subscriber, 0, len(subs))
		for _, s := range subs {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		eb.handlers[t] = kept
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, s := range eb.handlers[e.Type] {
		s.fn(e)
	}
}
