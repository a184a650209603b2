// Package server implements the accept loop (spec component N): it owns
// the listening socket and hands each accepted connection to its own
// Session, mirroring the teacher's single net.Listen + for-Accept-loop
// pattern rather than anything more elaborate (no connection pool, no
// worker limit - a holding server's per-connection cost is low enough
// that one goroutine per client is the whole concurrency model).
package server

import (
	"fmt"
	"net"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/handlers"
)

// Server accepts connections on a listening socket and runs one
// handlers.Session per connection, forever, until Close is called or
// Accept starts failing permanently.
type Server struct {
	deps     *handlers.Deps
	log      *logrus.Logger
	listener net.Listener
}

// New returns a Server ready to Listen, backed by deps - every
// collaborator a Session needs (registries, mapping, server state,
// metrics) is expected to already be fully built by the caller.
func New(deps *handlers.Deps) *Server {
	return &Server{deps: deps, log: deps.Log}
}

// Listen opens addr for accepting connections. Call Serve afterward to
// actually run the accept loop; split out so a caller can log the bound
// address (useful when addr ends in ":0") before blocking in Serve.
func (s *Server) Listen(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	s.listener = listener
	return nil
}

// Addr returns the bound listener's address. Only valid after Listen.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve runs the accept loop until the listener is closed, spawning one
// goroutine per accepted connection. An Accept error that reports itself
// as a timeout is retried; any other Accept error, a closed listener
// included, ends Serve and is returned.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return fmt.Errorf("server: accept: %w", err)
		}
		go handlers.NewSession(conn, s.deps).Run()
	}
}

// Close stops accepting new connections. In-flight Sessions are left to
// finish on their own; Close doesn't forcibly close their sockets.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// ListenAndServe is the common-case helper: Listen then Serve, logging
// the bound address first the way a long-running server process wants to
// confirm startup succeeded before blocking.
func (s *Server) ListenAndServe(addr string) error {
	if err := s.Listen(addr); err != nil {
		return err
	}
	s.log.WithField("addr", s.Addr().String()).Info("server listening")
	return s.Serve()
}
