package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/danmuck/dutctl/internal/observability"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/protocol/tlv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Reply texts. Peers match on these strings.
const (
	AckMessage         = "ACK: Command received"
	NackMessage        = "NACK: Error in received QuickTrack API message"
	UnsupportedMessage = "Unsupported command"
)

// Reply is the encoded ACK and RESPONSE for one inbound datagram, sent in
// that order.
type Reply struct {
	Ack      []byte
	Response []byte
}

// Dispatcher decodes, routes and replies. It is not safe for concurrent
// use; the control path feeds it one datagram at a time.
type Dispatcher struct {
	registry *Registry
	log      zerolog.Logger
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		log:      log.Logger.With().Str("component", "dispatch").Logger(),
	}
}

// Sender receives each encoded reply as soon as it is ready.
type Sender func(b []byte) error

// Handle processes one datagram and collects both replies. An error is
// returned only when nothing can be sent back, which is the case for
// datagrams shorter than a header.
func (d *Dispatcher) Handle(ctx context.Context, payload []byte) (Reply, error) {
	var reply Reply
	err := d.Dispatch(ctx, payload, func(b []byte) error {
		if reply.Ack == nil {
			reply.Ack = b
		} else {
			reply.Response = b
		}
		return nil
	})
	return reply, err
}

// Dispatch processes one datagram, passing the ACK to send before the
// handler runs and the RESPONSE after it returns.
func (d *Dispatcher) Dispatch(ctx context.Context, payload []byte, send Sender) error {
	msg, err := protocol.Decode(payload)
	if err != nil {
		var decErr *protocol.DecodeError
		if !errors.As(err, &decErr) {
			observability.RecordDecodeFailure("dropped")
			d.log.Warn().Err(err).Int("bytes", len(payload)).Msg("dropping datagram")
			return err
		}
		observability.RecordDecodeFailure("nack")
		d.log.Warn().Err(err).Str("type", decErr.Header.Type.String()).Uint16("id", decErr.Header.CorrelationID).Msg("rejecting message")
		return d.reply(send, decErr.Header.CorrelationID,
			Result{Status: protocol.StatusError, Message: NackMessage},
			Fail(err.Error()))
	}

	start := time.Now()
	cmd, ok := d.registry.Resolve(msg.Type)
	if !ok {
		d.log.Warn().Str("type", msg.Type.String()).Msg("no handler registered")
		observability.RecordCommand(msg.Type.String(), protocol.StatusError, time.Since(start))
		return d.reply(send, msg.CorrelationID, OK(AckMessage), Fail(UnsupportedMessage))
	}

	d.log.Debug().
		Str("type", msg.Type.String()).
		Uint16("id", msg.CorrelationID).
		Int("params", msg.Params.Len()).
		Msg("command received")

	if err := d.send(send, schema.MsgAck, msg.CorrelationID, OK(AckMessage)); err != nil {
		return err
	}

	res := d.run(ctx, cmd, msg)
	observability.RecordCommand(msg.Type.String(), res.Status, time.Since(start))

	event := d.log.Info()
	if !res.Succeeded() {
		event = d.log.Warn()
	}
	event.
		Str("type", msg.Type.String()).
		Int("status", res.Status).
		Dur("duration", time.Since(start)).
		Msg(res.Message)

	return d.send(send, schema.MsgResponse, msg.CorrelationID, res)
}

func (d *Dispatcher) run(ctx context.Context, cmd Command, msg protocol.Message) (res Result) {
	req := Request{
		Type:          msg.Type,
		CorrelationID: msg.CorrelationID,
		Params:        msg.Params,
	}
	if cmd.Projection != nil {
		caps, err := Project(msg.Params, cmd.Projection)
		if err != nil {
			d.log.Warn().Err(err).Str("type", msg.Type.String()).Msg("projection failed")
			return Failf("%s: Unknown TLV", cmd.Name())
		}
		req.Caps = caps
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("type", msg.Type.String()).Msg("handler panicked")
			res = Failf("%s: internal error: %v", cmd.Name(), r)
		}
	}()
	return cmd.Handler(ctx, req)
}

func (d *Dispatcher) reply(send Sender, id uint16, ack, resp Result) error {
	if err := d.send(send, schema.MsgAck, id, ack); err != nil {
		return err
	}
	return d.send(send, schema.MsgResponse, id, resp)
}

// send encodes r and hands it to send. A RESPONSE that cannot be encoded
// is replaced by an error RESPONSE.
func (d *Dispatcher) send(send Sender, t schema.MessageType, id uint16, r Result) error {
	b, err := encodeResult(t, id, r)
	if err != nil && t == schema.MsgResponse {
		d.log.Error().Err(err).Msg("response encode failed")
		b, err = encodeResult(t, id, Failf("response encode failed: %v", err))
	}
	if err != nil {
		return err
	}
	return send(b)
}

func encodeResult(t schema.MessageType, id uint16, r Result) ([]byte, error) {
	msg := protocol.NewReply(t, id, r.Status, clip(r.Message), r.TLVs...)
	b, err := protocol.Encode(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return b, nil
}

// clip keeps a reply message within one TLV without splitting a rune.
func clip(s string) string {
	if len(s) <= tlv.MaxValueLen {
		return s
	}
	cut := tlv.MaxValueLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
