package ports

// Event é um evento de domínio entregue aos clientes conectados de um gestor
type Event struct {
	Type     string `json:"type"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
	ImovelID string `json:"imovel_id,omitempty"`
}

// EventPublisher publica eventos para os clientes de um gestor.
// A entrega é best-effort: falhas de publicação não afetam a requisição.
type EventPublisher interface {
	Publish(gestorID string, event Event)
}
