// internal/transport/tcpserver/server.go
package tcpserver

import (
	"errors"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
)

// Server is a single-client TCP stand-in for the serial endpoint, for
// development without hardware. One remote caller at a time: a new
// connection is only accepted once the current one is gone.
//
// Accept and read are deadline-driven so Receive keeps the transport's
// non-blocking best-effort contract.
type Server struct {
	listener *net.TCPListener
	conn     net.Conn
}

// ioDeadline bounds one accept or read attempt within Receive.
const ioDeadline = 5 * time.Millisecond

// Listen starts listening on endpoint (host:port).
func Listen(endpoint string) (*Server, error) {
	if endpoint == "" {
		return nil, errors.New("tcp transport: endpoint required")
	}

	addr, err := net.ResolveTCPAddr("tcp", endpoint)
	if err != nil {
		return nil, err
	}
	ln, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return nil, err
	}

	log.Infof("TCP transport listening on %s.", endpoint)

	return &Server{listener: ln}, nil
}

// Receive reads available bytes from the connected client, accepting a
// pending connection first if none is active. (0, nil) means nothing
// ready yet.
func (s *Server) Receive(buf []byte) (int, error) {
	if s.conn == nil {
		if err := s.listener.SetDeadline(time.Now().Add(ioDeadline)); err != nil {
			return 0, err
		}
		conn, err := s.listener.Accept()
		if err != nil {
			if isTimeout(err) {
				return 0, nil
			}
			return 0, err
		}
		log.Infof("Client connected from %s.", conn.RemoteAddr())
		s.conn = conn
	}

	if err := s.conn.SetReadDeadline(time.Now().Add(ioDeadline)); err != nil {
		return 0, err
	}
	n, err := s.conn.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return n, nil
		}
		// Connection gone; go back to accepting.
		log.Infof("Client disconnected: %v", err)
		s.conn.Close()
		s.conn = nil
		return n, nil
	}
	return n, nil
}

// Send writes one response line followed by its terminator. Without a
// connected client the response is dropped.
func (s *Server) Send(data []byte) error {
	if s.conn == nil {
		return nil
	}
	if _, err := s.conn.Write(append(data, '\n')); err != nil {
		log.Warnf("Send failed, dropping client: %v", err)
		s.conn.Close()
		s.conn = nil
	}
	return nil
}

// Close drops the client and stops listening.
func (s *Server) Close() error {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	return s.listener.Close()
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
