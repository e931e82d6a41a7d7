package agent

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/danmuck/dutctl/internal/confgen"
	"github.com/danmuck/dutctl/internal/observability"
	"github.com/danmuck/dutctl/internal/platform"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

var (
	errNoHostapdConfig = errors.New("agent: no hostapd configuration written")
	errNoP2PGroup      = errors.New("agent: no P2P group interface")
)

// missing is the reply text for an absent required parameter.
func missing(tag schema.Tag) string {
	return "Missed TLV: " + schema.TagName(schema.RoleRequest, tag)
}

// dutRole reads ROLE. present is false when the tag is absent.
func dutRole(params protocol.Params) (role schema.DutType, present bool, err error) {
	raw, ok := params.Get(schema.TagRole)
	if !ok {
		return 0, false, nil
	}
	role, valid := schema.ParseDutType(strings.TrimSpace(raw))
	if !valid {
		return 0, true, fmt.Errorf("invalid ROLE %q", raw)
	}
	return role, true, nil
}

func (s *Service) ifname() string {
	return s.alloc.Default()
}

// p2pDevice is the wpa_supplicant P2P device interface of the default
// interface.
func (s *Service) p2pDevice() string {
	return "p2p-dev-" + s.ifname()
}

func (s *Service) p2pGroup(ctx context.Context) (string, error) {
	list, err := s.network.WirelessInterfaces(ctx)
	if err != nil {
		return "", err
	}
	g, ok := platform.P2PGroup(list)
	if !ok || g.Name == "" {
		return "", errNoP2PGroup
	}
	return g.Name, nil
}

func (s *Service) hostapdPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.cfg.HostapdDir, name)
}

func (s *Service) trackHostapdFile(name string) {
	if !slices.Contains(s.hostapdFiles, name) {
		s.hostapdFiles = append(s.hostapdFiles, name)
	}
}

// writeDocument stores doc at path, appending when the document says so.
func (s *Service) writeDocument(path string, doc confgen.Document) error {
	write := s.files.WriteFile
	if doc.Append {
		write = s.files.AppendFile
	}
	if err := write(path, []byte(doc.Text)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	observability.RecordDocument(string(doc.Role), doc.Append)
	s.log.Debug().
		Str("role", string(doc.Role)).
		Str("path", path).
		Bool("append", doc.Append).
		Msg("configuration written")
	return nil
}

// assignIP puts ip on the bridge when it exists, otherwise replaces the
// addresses of ifname.
func (s *Service) assignIP(ctx context.Context, ip, ifname string) error {
	if s.network.BridgeExists(ctx, s.cfg.BridgeName) {
		return s.network.AssignStaticIP(ctx, ip, s.cfg.BridgeName)
	}
	if ifname == "" {
		return confgen.ErrNoInterface
	}
	if err := s.network.ResetIP(ctx, ifname); err != nil {
		s.log.Warn().Err(err).Str("interface", ifname).Msg("flush addresses")
	}
	return s.network.AssignStaticIP(ctx, ip, ifname)
}

// cliOK reports a control-socket reply that carries OK.
func cliOK(out string, err error) bool {
	return err == nil && strings.Contains(out, "OK")
}
