package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pixelgrove/relay-server/transport/websocket"
)

// Server routes HTTP traffic to the health check and the WebSocket hub.
type Server struct {
	hub    *websocket.Hub
	router *mux.Router
}

// NewServer creates the HTTP server for the given hub.
func NewServer(hub *websocket.Hub) *Server {
	s := &Server{
		hub:    hub,
		router: mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.HandleFunc("/", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealth answers load balancers and uptime checks with a plain line.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Game WebSocket Server Running")
}

// handleWebSocket hands the connection to the hub.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r)
}
