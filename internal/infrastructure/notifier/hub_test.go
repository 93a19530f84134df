package notifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishLlegaATodosLosSuscriptores(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	require.Equal(t, 2, h.Suscriptores())

	h.Publish("pedidoCreado", map[string]string{"id": "p1"})

	for _, ch := range []chan []byte{a, b} {
		msg := <-ch
		var payload struct {
			Evento string            `json:"evento"`
			Datos  map[string]string `json:"datos"`
		}
		require.NoError(t, json.Unmarshal(msg, &payload))
		assert.Equal(t, "pedidoCreado", payload.Evento)
		assert.Equal(t, "p1", payload.Datos["id"])
	}
}

func TestHub_SuscriptorLentoNoBloquea(t *testing.T) {
	h := NewHub()
	lento := h.Subscribe()

	// Llenar el buffer del suscriptor y seguir publicando: Publish no debe bloquear.
	for i := 0; i < bufferSuscriptor+5; i++ {
		h.Publish("pedidoActualizado", map[string]int{"n": i})
	}

	assert.Len(t, lento, bufferSuscriptor, "los mensajes que exceden el buffer se descartan")
}

func TestHub_UnsubscribeCierraElCanal(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)

	_, abierto := <-ch
	assert.False(t, abierto)
	assert.Equal(t, 0, h.Suscriptores())

	// Doble baja no entra en pánico.
	h.Unsubscribe(ch)

	// Publicar sin suscriptores tampoco.
	h.Publish("pedidoEliminado", map[string]string{"id": "p1"})
}

func TestHub_DatosNoSerializablesNoPublican(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	h.Publish("pedidoCreado", make(chan int))

	assert.Empty(t, ch)
}
