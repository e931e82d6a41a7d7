package confgen

import (
	"fmt"
	"strconv"

	"github.com/danmuck/dutctl/internal/capset"
	"github.com/danmuck/dutctl/internal/iface"
)

// DefaultHostapdFile is used when the request carries no BSS identifier.
const DefaultHostapdFile = "hostapd.conf"

// APTarget is where an AP document goes.
type APTarget struct {
	Interface string
	FileName  string
	Append    bool
	FellBack  bool
}

// ResolveAPTarget picks the interface and hostapd file name for caps. The
// bss_identifier, he_6g_only and hw_mode entries are left in caps.
func ResolveAPTarget(caps capset.Set, alloc *iface.Allocator) (APTarget, error) {
	if raw, ok := caps.Get("bss_identifier"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return APTarget{}, fmt.Errorf("%w: bss_identifier=%q", ErrInvalidValue, raw)
		}
		id := iface.Decompose(n)
		if !id.Band.Valid() {
			return APTarget{}, fmt.Errorf("%w: bss_identifier band %d", ErrInvalidValue, int(id.Band))
		}
		if id.MultiBSSID {
			return APTarget{}, fmt.Errorf("%w: bss_identifier=0x%x", ErrMultiBSSID, n)
		}
		name, fellBack := alloc.Resolve(id.Band, id.Key())
		if name == "" {
			return APTarget{}, ErrNoInterface
		}
		return APTarget{Interface: name, FileName: id.HostapdFileName(), FellBack: fellBack}, nil
	}

	band := iface.Band24G
	if caps.Has("he_6g_only") {
		band = iface.Band6G
	} else if mode, _ := caps.Get("hw_mode"); mode == "a" {
		band = iface.Band5G
	}
	// A single BSS uses slot 0 of its band; WPS configures twice and must land
	// on the same interface.
	name, fellBack := alloc.Resolve(band, iface.BSSIdentifier{Band: band}.Key())
	if name == "" {
		return APTarget{}, ErrNoInterface
	}
	return APTarget{Interface: name, FileName: DefaultHostapdFile, FellBack: fellBack}, nil
}
