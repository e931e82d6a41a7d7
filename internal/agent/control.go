package agent

import (
	"context"
	"errors"
	"net"

	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxDatagram bounds one inbound control message.
const maxDatagram = 4096

// ControlPath is the blocking receive loop. Each datagram is decoded,
// acknowledged, handled and answered before the next read.
type ControlPath struct {
	conn       net.PacketConn
	dispatcher *dispatch.Dispatcher
	log        zerolog.Logger
}

func NewControlPath(conn net.PacketConn, d *dispatch.Dispatcher) *ControlPath {
	return &ControlPath{
		conn:       conn,
		dispatcher: d,
		log:        log.Logger.With().Str("component", "control").Logger(),
	}
}

func (c *ControlPath) Addr() net.Addr {
	return c.conn.LocalAddr()
}

// Serve reads until ctx is done, then closes the socket and returns nil.
// Per-datagram failures are logged and the loop continues.
func (c *ControlPath) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.Close()
	})
	defer stop()
	c.log.Info().Str("addr", c.Addr().String()).Msg("control path listening")

	buf := make([]byte, maxDatagram)
	for {
		n, peer, err := c.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			c.log.Warn().Err(err).Msg("receive failed")
			continue
		}
		payload := make([]byte, n)
		copy(payload, buf[:n])

		err = c.dispatcher.Dispatch(ctx, payload, func(b []byte) error {
			_, werr := c.conn.WriteTo(b, peer)
			return werr
		})
		if err != nil {
			c.log.Warn().Err(err).Str("peer", peer.String()).Msg("datagram not answered")
		}
	}
}
