package callback

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"
)

// Server is the loopback listener that catches the browser redirect at
// the end of a third-party login. The provider sends the user to
// http://<listen>/auth/callback?token=...&name=... and the result is
// fanned out through the hub to the running UI.
type Server struct {
	addr string
	hub  *Hub
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{addr: addr, hub: hub}
}

// ListenAndServe blocks until ctx is cancelled. Startup failure (port
// taken, etc.) is returned so the caller can decide whether social login
// matters for this run.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/callback", s.handleCallback)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	// Query().Get percent-decodes, which is exactly what the name field
	// needs. The UI applies the both-present rule; publish as-is.
	q := r.URL.Query()
	res := Result{Token: q.Get("token"), Name: q.Get("name")}
	s.hub.Publish(res)

	if res.Token == "" || res.Name == "" {
		log.Printf("auth callback missing token or name")
		http.Error(w, "missing token or name", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body><p>Signed in. You can close this tab and return to the terminal.</p></body></html>"))
}
