package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gardengates/comanda-api/internal/infrastructure/notifier"
)

// WSUpgrade rechaza con 426 las peticiones a /ws que no sean upgrade de websocket.
func WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WSHandler conecta el cliente al hub de eventos: cada evento de pedidos
// publicado tras confirmar su transacción se reenvía por el socket. Si el
// cliente pierde mensajes (buffer lleno o reconexión), repone su estado
// consultando la API.
func WSHandler(hub *notifier.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)
		log.Debug().Int("suscriptores", hub.Suscriptores()).Msg("cliente websocket conectado")

		// El lector solo detecta la desconexión; los clientes no envían comandos.
		cerrado := make(chan struct{})
		go func() {
			defer close(cerrado)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-cerrado:
				return
			}
		}
	})
}
