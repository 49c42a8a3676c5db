package planner

import "fmt"

// Event severities. Warnings correspond to conditions the UI surfaces as
// destructive toasts; everything else is informational.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// Event is a user-visible notification emitted by the planner after a state
// transition. Subscribers render it however they like (toast, log line,
// websocket broadcast); the planner itself carries no UI concerns.
type Event struct {
	Entity      string `json:"entity"`
	Action      string `json:"action"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Type returns the entity_action pair used as a message discriminator.
func (e Event) Type() string {
	return fmt.Sprintf("%s_%s", e.Entity, e.Action)
}

// Subscriber receives planner events. Calls are synchronous and must not
// re-enter the planner.
type Subscriber func(Event)
