package agent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/danmuck/dutctl/internal/confgen"
	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/iface"
	"github.com/danmuck/dutctl/internal/observability"
	"github.com/danmuck/dutctl/internal/platform"
	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrNoWirelessInterface = errors.New("agent: no wireless interface found")

// Platform bundles the host collaborators. Nil members come from the Linux
// implementation.
type Platform struct {
	Daemons platform.Daemons
	Network platform.Network
	Files   platform.Files
	Runner  platform.Runner
}

// CompilerFactory builds the configuration compiler once the allocator
// exists. Vendor builds pass their own.
type CompilerFactory func(alloc *iface.Allocator, wps confgen.WPSSource) confgen.Compiler

type options struct {
	platform Platform
	compiler CompilerFactory
	wps      confgen.WPSSource
}

type Option func(*options)

func WithPlatform(p Platform) Option {
	return func(o *options) { o.platform = p }
}

func WithCompiler(f CompilerFactory) Option {
	return func(o *options) { o.compiler = f }
}

func WithWPSSource(src confgen.WPSSource) Option {
	return func(o *options) { o.wps = src }
}

// Service runs the agent lifecycle.
type Service struct {
	cfg        ServiceConfig
	spec       iface.Spec
	alloc      *iface.Allocator
	compiler   confgen.Compiler
	daemons    platform.Daemons
	network    platform.Network
	files      platform.Files
	runner     platform.Runner
	registry   *dispatch.Registry
	dispatcher *dispatch.Dispatcher
	started    time.Time
	log        zerolog.Logger

	// Command state. Only handlers touch it, one at a time.
	apDebug      schema.DebugLevel
	staDebug     schema.DebugLevel
	hostapdFiles []string
	loopback     *Loopback
}

func NewService(cfg ServiceConfig, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spec, err := iface.ParseSpec(cfg.Interface)
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p := o.platform
	if p.Daemons == nil || p.Network == nil || p.Files == nil || p.Runner == nil {
		linux := platform.NewLinux(p.Runner, p.Files, cfg.Paths)
		if p.Daemons == nil {
			p.Daemons = linux
		}
		if p.Network == nil {
			p.Network = linux
		}
		if p.Files == nil {
			p.Files = linux.Files()
		}
		if p.Runner == nil {
			p.Runner = linux.Runner()
		}
	}
	wps := o.wps
	if wps == nil {
		wps = confgen.FileWPSSource{Dir: cfg.WPSDir}
	}
	factory := o.compiler
	if factory == nil {
		factory = func(alloc *iface.Allocator, wps confgen.WPSSource) confgen.Compiler {
			return confgen.NewDefault(alloc, wps)
		}
	}

	alloc := spec.Allocator()
	s := &Service{
		cfg:      cfg,
		spec:     spec,
		alloc:    alloc,
		compiler: factory(alloc, wps),
		daemons:  p.Daemons,
		network:  p.Network,
		files:    p.Files,
		runner:   p.Runner,
		registry: dispatch.NewRegistry(),
		log:      log.Logger.With().Str("component", "agent").Logger(),
	}
	s.registry.MustRegister(s.commands()...)
	s.dispatcher = dispatch.NewDispatcher(s.registry)
	return s, nil
}

func (s *Service) Config() ServiceConfig            { return s.cfg }
func (s *Service) Allocator() *iface.Allocator      { return s.alloc }
func (s *Service) Registry() *dispatch.Registry     { return s.registry }
func (s *Service) Dispatcher() *dispatch.Dispatcher { return s.dispatcher }

// Run blocks until ctx is done or SIGINT/SIGTERM arrives.
func (s *Service) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.bootstrap(ctx); err != nil {
		return err
	}
	conn, err := net.ListenPacket("udp4", s.cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("agent: listen %s: %w", s.cfg.ListenAddr(), err)
	}
	return s.serve(ctx, conn)
}

// bootstrap makes sure every configured interface exists and picks a
// default when none was given.
func (s *Service) bootstrap(ctx context.Context) error {
	if !platform.IsRoot() {
		s.log.Warn().Msg("not running as root; daemon and network control will fail")
	}
	for _, slot := range s.spec.Slots {
		if err := s.network.EnsureWireless(ctx, slot.Name); err != nil {
			return fmt.Errorf("agent: prepare %s: %w", slot.Name, err)
		}
	}
	if len(s.spec.Names()) == 0 {
		name, err := s.detectInterface(ctx)
		if err != nil {
			return err
		}
		s.alloc.SetDefault(name)
	}
	s.started = time.Now()
	s.log.Info().
		Str("listen", s.cfg.ListenAddr()).
		Str("interface", s.alloc.Default()).
		Int("slots", len(s.alloc.Slots())).
		Int("commands", len(s.registry.List())).
		Msg("agent ready")
	return nil
}

func (s *Service) detectInterface(ctx context.Context) (string, error) {
	list, err := s.network.WirelessInterfaces(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoWirelessInterface, err)
	}
	for _, w := range list {
		if w.Name != "" && !strings.HasPrefix(w.Type, "P2P") {
			return w.Name, nil
		}
	}
	return "", ErrNoWirelessInterface
}

func (s *Service) serve(ctx context.Context, conn net.PacketConn) error {
	defer s.stopLoopback()

	g, gctx := errgroup.WithContext(ctx)
	control := NewControlPath(conn, s.dispatcher)
	g.Go(func() error {
		return control.Serve(gctx)
	})
	if addr := strings.TrimSpace(s.cfg.AdminListenAddr); addr != "" {
		g.Go(func() error {
			return s.serveAdmin(gctx, addr)
		})
	}
	err := g.Wait()
	s.log.Info().Err(err).Msg("agent shutdown")
	return err
}

// serveAdmin runs the read-only admin router until ctx is done.
func (s *Service) serveAdmin(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("agent: admin listen %s: %w", addr, err)
	}
	router := observability.NewAdminRouter(s.alloc, observability.AdminInfo{
		Version:      s.cfg.Version,
		Started:      s.started,
		Commands:     s.registry.Names,
		AllowOrigins: s.cfg.AdminOrigins,
	}, s.log)
	srv := &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second}
	s.log.Info().Str("addr", ln.Addr().String()).Msg("admin listening")

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Service) stopLoopback() {
	if s.loopback == nil {
		return
	}
	if err := s.loopback.Close(); err != nil {
		s.log.Warn().Err(err).Msg("loopback close")
	}
	s.loopback = nil
}
