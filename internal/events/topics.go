package events

// Topic constants for domain events emitted by the cart engine.
const (
	TopicCartCreated    = "cart.created"
	TopicCartCheckedOut = "cart.checked_out"
)

// DefaultTopics returns the canonical list of emitted topics.
func DefaultTopics() []string {
	return []string{
		TopicCartCreated,
		TopicCartCheckedOut,
	}
}
