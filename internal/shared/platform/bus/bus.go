package bus

import "context"

// EventPublisher publica eventos de integración hacia el exterior.
// La publicación es best-effort: los handlers nunca esperan el resultado.
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}

// Keyer lo implementan los agregados que quieren fijar la partition key
// del mensaje publicado.
type Keyer interface {
	PartitionKey() string
}
