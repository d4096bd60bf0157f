package notifications

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/condogestor/condoasset-backend/internal/domain/ports"
	"github.com/condogestor/condoasset-backend/internal/handlers/middleware"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// envelope é a mensagem enviada aos clientes conectados
type envelope struct {
	Type     string `json:"type"`
	Resource string `json:"resource,omitempty"`
	ID       string `json:"id,omitempty"`
	ImovelID string `json:"imovel_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// client envolve a conexão com um mutex de escrita. O gorilla/websocket
// suporta no máximo um escritor por conexão, então toda escrita (Publish,
// ping e boas-vindas) passa por aqui.
type client struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (cl *client) writeJSON(v any) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()

	if err := cl.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return cl.conn.WriteJSON(v)
}

func (cl *client) ping() error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()

	if err := cl.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return cl.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub mantém as conexões WebSocket agrupadas por gestor e publica
// eventos de domínio para os clientes do gestor correspondente
type Hub struct {
	allowedOrigins []string
	logger         ports.Logger

	mu      sync.RWMutex
	clients map[string]map[*client]bool
}

// NewHub cria um novo Hub
func NewHub(allowedOrigins []string, logger ports.Logger) *Hub {
	return &Hub{
		allowedOrigins: allowedOrigins,
		logger:         logger,
		clients:        make(map[string]map[*client]bool),
	}
}

// Publish envia o evento para todos os clientes conectados do gestor.
// Entrega best-effort: conexões que falham são descartadas.
func (h *Hub) Publish(gestorID string, event ports.Event) {
	h.mu.RLock()
	conns, exists := h.clients[gestorID]
	if !exists || len(conns) == 0 {
		h.mu.RUnlock()
		return
	}

	// Copiar os clientes para não segurar o lock durante os writes
	targets := make([]*client, 0, len(conns))
	for cl := range conns {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	msg := envelope{
		Type:     event.Type,
		Resource: event.Resource,
		ID:       event.ID,
		ImovelID: event.ImovelID,
	}

	for _, cl := range targets {
		if err := cl.writeJSON(msg); err != nil {
			h.logger.Warn("falha ao publicar evento, removendo conexão", "gestor_id", gestorID, "error", err)
			h.remove(gestorID, cl)
			cl.conn.Close()
		}
	}
}

// Handle faz o upgrade da conexão e a registra para o gestor autenticado
func (h *Hub) Handle(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	gestorID := user.ID

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range h.allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("falha no upgrade da conexão websocket", "gestor_id", gestorID, "error", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	cl := &client{conn: conn}
	h.add(gestorID, cl)

	defer func() {
		h.remove(gestorID, cl)
		conn.Close()
		h.logger.Debug("conexão websocket encerrada", "gestor_id", gestorID)
	}()

	if err := cl.writeJSON(envelope{Type: "connected", Message: "conexão estabelecida"}); err != nil {
		return
	}

	done := make(chan struct{})
	defer close(done)

	go h.pingLoop(cl, done)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("erro na conexão websocket", "gestor_id", gestorID, "error", err)
			}
			break
		}
	}
}

func (h *Hub) pingLoop(cl *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := cl.ping(); err != nil {
				return
			}
		}
	}
}

func (h *Hub) add(gestorID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[gestorID] == nil {
		h.clients[gestorID] = make(map[*client]bool)
	}
	h.clients[gestorID][cl] = true
}

func (h *Hub) remove(gestorID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, exists := h.clients[gestorID]; exists {
		delete(conns, cl)
		if len(conns) == 0 {
			delete(h.clients, gestorID)
		}
	}
}
