package notifier

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/gardengates/comanda-api/internal/application/pedidos"
)

var _ pedidos.Publisher = (*Hub)(nil)

// tamaño del buffer de cada suscriptor: absorbe ráfagas sin bloquear al publicador.
const bufferSuscriptor = 16

// Hub difunde eventos de pedidos a los suscriptores conectados (websockets).
// La entrega es best effort, a lo sumo una vez: si el buffer de un suscriptor
// está lleno, el mensaje se descarta para ese suscriptor; el cliente repone
// su estado consultando la API al reconectar.
type Hub struct {
	mu           sync.RWMutex
	suscriptores map[chan []byte]struct{}
}

// NewHub construye un hub sin suscriptores.
func NewHub() *Hub {
	return &Hub{suscriptores: make(map[chan []byte]struct{})}
}

// Subscribe registra un suscriptor y devuelve su canal de mensajes.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, bufferSuscriptor)
	h.mu.Lock()
	h.suscriptores[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe da de baja el suscriptor y cierra su canal.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.suscriptores[ch]; ok {
		delete(h.suscriptores, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish serializa el evento una sola vez y lo envía a todos los suscriptores
// sin bloquear. Formato: {"evento": ..., "datos": ...}.
func (h *Hub) Publish(evento string, datos any) {
	msg, err := json.Marshal(map[string]any{"evento": evento, "datos": datos})
	if err != nil {
		log.Error().Err(err).Str("evento", evento).Msg("no se pudo serializar el evento")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.suscriptores {
		select {
		case ch <- msg:
		default:
			// Suscriptor lento: descartar en lugar de frenar al resto.
		}
	}
}

// Suscriptores devuelve cuántos clientes están conectados.
func (h *Hub) Suscriptores() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.suscriptores)
}
