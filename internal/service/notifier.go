package service

// Event types fanned out to WebSocket clients and the event bus.
const (
	EventUserRegistered   = "user.registered"
	EventPenukaranCreated = "penukaran.created"
	EventPenukaranStatus  = "penukaran.status_updated"
	EventPaymentCreated   = "payment.created"
	EventPaymentStatus    = "payment.status_updated"
	EventPelaporanStatus  = "pelaporan.status_updated"
)

// Notifier publishes domain events after the store has committed them.
type Notifier interface {
	Notify(eventType string, key string, payload interface{})
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string, interface{}) {}
