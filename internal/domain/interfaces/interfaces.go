package interfaces

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

// Mailer delivers outbound notifications. Delivery is a collaborator
// responsibility; callers decide what a failed send means for their state.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
}

// WebSocketManager fans event updates out to connected dashboard clients.
type WebSocketManager interface {
	AddClient(client WebSocketClient) error
	RemoveClient(clientID string) error
	Broadcast(update *domain.EventUpdate) error
	GetClientCount() int
}

type WebSocketClient interface {
	GetID() string
	Send(update *domain.EventUpdate) error
	Close() error
	IsActive() bool
	HandleConnection()
}
