package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"sevaBack/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

type directMsg struct {
	userID string
	msg    models.Message
}

type unreg struct {
	userID string
	conn   *websocket.Conn
}

type Client struct {
	ID     string
	Socket *websocket.Conn
}

type WebSocketManager struct {
	clients    map[string]*websocket.Conn
	direct     chan directMsg
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*websocket.Conn),
		direct:     make(chan directMsg),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// All operations on clients happen here.
func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			// a newer socket for the same user replaces the old one
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("WS register user=%s", client.ID)

		case u := <-ws.unregister:
			// remove only if the current socket still matches
			if cur, ok := ws.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.userID)
				log.Printf("WS unregister user=%s", u.userID)
			}

		case dm := <-ws.direct:
			if conn, ok := ws.clients[dm.userID]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(dm.msg); err != nil {
					log.Printf("direct send error to=%s: %v", dm.userID, err)
					_ = conn.Close()
					delete(ws.clients, dm.userID)
				}
			} else {
				log.Printf("direct skip: user=%s offline", dm.userID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame from the client must be { "userId": "<id>" }.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		UserID string `json:"userId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == "" {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.wsManager.register <- Client{ID: hello.UserID, Socket: conn}

	go pingLoop(app.wsManager, conn, hello.UserID)
	go app.handleWebSocketMessages(conn, hello.UserID)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, uid string) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

func (app *application) handleWebSocketMessages(conn *websocket.Conn, userID string) {
	defer func() {
		app.wsManager.unregister <- unreg{userID: userID, conn: conn}
		_ = conn.Close()
	}()

	for {
		var msg models.Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("read json error:", err)
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}

		if msg.SenderID != userID {
			log.Println("reject: sender_id != authenticated userId")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		saved, err := app.messageService.CreateMessage(ctx, msg)
		if err != nil {
			cancel()
			log.Println("save message error:", err)
			continue
		}

		receiverID, err := app.chatReceiver(ctx, saved)
		cancel()
		if err != nil {
			log.Println("resolve receiver error:", err)
			continue
		}

		// delivery is best-effort; the stored row is the source of truth
		app.wsManager.direct <- directMsg{userID: receiverID, msg: saved}
	}
}

// chatReceiver resolves the other party of the booking the message belongs
// to: the provider when the user sent it, the user otherwise.
func (app *application) chatReceiver(ctx context.Context, msg models.Message) (string, error) {
	booking, err := app.bookingService.GetBookingByID(ctx, msg.BookingID)
	if err != nil {
		return "", err
	}
	if msg.SenderType == models.SenderTypeUser {
		return booking.ProviderID, nil
	}
	return booking.UserID, nil
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
