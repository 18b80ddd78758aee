package broadcast

import (
	"net"
	"net/http"

	"github.com/pkg/errors"
)

// FramesPath is where clients connect for the frame stream.
const FramesPath = "/frames"

// Server serves a hub over HTTP. Listen errors are returned up front; errors
// after that arrive on Err.
type Server struct {
	srv  *http.Server
	ln   net.Listener
	errc chan error
}

func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle(FramesPath, hub)
	s := &Server{
		srv:  &http.Server{Handler: mux},
		ln:   ln,
		errc: make(chan error, 1),
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errc <- errors.Wrap(err, "serve frames")
		}
		close(s.errc)
	}()
	return s, nil
}

func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Err yields at most one serve error and is closed once serving stops.
func (s *Server) Err() <-chan error { return s.errc }

func (s *Server) Close() error { return s.srv.Close() }
