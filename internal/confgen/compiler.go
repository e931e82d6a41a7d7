package confgen

import (
	"github.com/danmuck/dutctl/internal/capset"
	"github.com/danmuck/dutctl/internal/iface"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Role is the daemon a document is written for.
type Role string

const (
	RoleAP  Role = "hostapd"
	RoleSTA Role = "wpa_supplicant"
	RoleP2P Role = "p2p"
)

// DefaultSupplicantFile is the wpa_supplicant document name.
const DefaultSupplicantFile = "wpa_supplicant.conf"

// Document is one compiled configuration file.
type Document struct {
	Role      Role
	FileName  string
	Interface string
	Append    bool
	Text      string
}

// Compiler turns capability sets into daemon configuration. Vendor builds
// swap in their own implementation at service construction.
type Compiler interface {
	CompileAP(caps capset.Set, target APTarget) (Document, error)
	CompileSTA(caps capset.Set) (Document, error)
	CompileSTAWSC(caps capset.Set) (Document, error)
	P2PDevice() Document
}

// Default is the stock compiler.
type Default struct {
	alloc *iface.Allocator
	wps   WPSSource
	log   zerolog.Logger
}

var _ Compiler = (*Default)(nil)

// NewDefault wires the allocator used for OWE transition lookups and the
// WPS settings source. A nil source reads the standard settings files.
func NewDefault(alloc *iface.Allocator, wps WPSSource) *Default {
	if wps == nil {
		wps = FileWPSSource{}
	}
	return &Default{
		alloc: alloc,
		wps:   wps,
		log:   log.Logger.With().Str("component", "confgen").Logger(),
	}
}

// P2PDevice returns the wpa_supplicant document used for P2P start-up.
func (c *Default) P2PDevice() Document {
	var b KVBuilder
	b.Line("ctrl_interface", "/var/run/wpa_supplicant")
	b.Line("device_name", "WFA P2P Device")
	b.Line("device_type", "1-0050F204-1")
	b.Line("config_methods", "keypad display push_button")
	return Document{Role: RoleP2P, FileName: "p2p-wpa_supplicant.conf", Text: b.String()}
}
