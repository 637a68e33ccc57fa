package infra

import "sync"

// EventType identifica las notificaciones que el almacén emite hacia el host.
type EventType string

const (
	EventConnectionEstablished EventType = "connection_established"
	EventBackupCreated         EventType = "backup_created"
)

// Event es una notificación del almacén (conexión establecida, backup creado).
type Event struct {
	Type   EventType
	Detail string
}

// Notifier desacopla el almacén de la UI: el host se suscribe y recibe los
// eventos por canal. La publicación nunca bloquea; un suscriptor lento pierde
// eventos en vez de frenar las operaciones.
type Notifier struct {
	mu   sync.RWMutex
	subs []chan Event
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registra un nuevo suscriptor y devuelve su canal.
func (n *Notifier) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()
	return ch
}

// Publish entrega ev a todos los suscriptores sin bloquear.
func (n *Notifier) Publish(ev Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
