package agent

import (
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const loopbackBuffer = 1400

// Loopback echoes every datagram back to its sender. The test tool uses it
// to probe data-path connectivity.
type Loopback struct {
	conn *net.UDPConn
	done chan struct{}
	log  zerolog.Logger
}

// StartLoopback binds an ephemeral UDP port on ip and starts echoing.
func StartLoopback(ip string) (*Loopback, error) {
	addr := &net.UDPAddr{IP: net.ParseIP(ip)}
	if addr.IP == nil {
		return nil, fmt.Errorf("agent: loopback address %q", ip)
	}
	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("agent: loopback listen: %w", err)
	}
	l := &Loopback{
		conn: conn,
		done: make(chan struct{}),
		log:  log.Logger.With().Str("component", "loopback").Logger(),
	}
	l.log.Info().Str("addr", conn.LocalAddr().String()).Msg("loopback started")
	go l.serve()
	return l, nil
}

func (l *Loopback) Port() int {
	return l.conn.LocalAddr().(*net.UDPAddr).Port
}

// Close stops the echo and waits for its goroutine.
func (l *Loopback) Close() error {
	err := l.conn.Close()
	<-l.done
	return err
}

func (l *Loopback) serve() {
	defer close(l.done)
	buf := make([]byte, loopbackBuffer)
	for {
		n, peer, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			l.log.Debug().Err(err).Msg("loopback read")
			continue
		}
		if _, err := l.conn.WriteToUDP(buf[:n], peer); err != nil {
			l.log.Debug().Err(err).Str("peer", peer.String()).Msg("loopback echo")
		}
	}
}
