package platform

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// WirelessInterface is one entry of `iw dev`. Name is empty for the
// non-netdev P2P device.
type WirelessInterface struct {
	Name string
	Type string
	Addr string
}

// Network manages addresses, bridges and DHCP.
type Network interface {
	InterfaceIPv4(name string) (string, error)
	InterfaceMAC(name string) (string, error)
	AssignStaticIP(ctx context.Context, ip, ifname string) error
	ResetIP(ctx context.Context, ifname string) error
	BridgeExists(ctx context.Context, name string) bool
	CreateBridge(ctx context.Context, name string, members []string) error
	ResetBridge(ctx context.Context, name string) error
	StartDHCPServer(ctx context.Context, ifname, ip string) error
	StartDHCPClient(ctx context.Context, ifname string) error
	StopDHCPServer(ctx context.Context) error
	StopDHCPClient(ctx context.Context) error
	WirelessInterfaces(ctx context.Context) ([]WirelessInterface, error)
	EnsureWireless(ctx context.Context, name string) error
}

var _ Network = (*Linux)(nil)

func (l *Linux) InterfaceIPv4(name string) (string, error) {
	ifc, err := net.InterfaceByName(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNoInterface, name, err)
	}
	addrs, err := ifc.Addrs()
	if err != nil {
		return "", err
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if v4 := ipnet.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoIPv4, name)
}

func (l *Linux) InterfaceMAC(name string) (string, error) {
	ifc, err := net.InterfaceByName(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNoInterface, name, err)
	}
	return ifc.HardwareAddr.String(), nil
}

func (l *Linux) AssignStaticIP(ctx context.Context, ip, ifname string) error {
	_, err := l.run(ctx, "ip", "addr", "add", ip+"/24", "dev", ifname)
	return err
}

func (l *Linux) ResetIP(ctx context.Context, ifname string) error {
	_, err := l.run(ctx, "ip", "addr", "flush", "dev", ifname)
	return err
}

func (l *Linux) BridgeExists(ctx context.Context, name string) bool {
	_, err := l.run(ctx, "ip", "link", "show", name)
	return err == nil
}

// CreateBridge creates name, brings it up and enslaves members.
func (l *Linux) CreateBridge(ctx context.Context, name string, members []string) error {
	if _, err := l.run(ctx, "brctl", "addbr", name); err != nil {
		return err
	}
	if _, err := l.run(ctx, "ip", "link", "set", name, "up"); err != nil {
		return err
	}
	for _, m := range members {
		if _, err := l.run(ctx, "brctl", "addif", name, m); err != nil {
			return err
		}
	}
	return nil
}

// ResetBridge removes name if it exists.
func (l *Linux) ResetBridge(ctx context.Context, name string) error {
	if !l.BridgeExists(ctx, name) {
		return nil
	}
	l.best(ctx, "ip", "link", "set", name, "down")
	_, err := l.run(ctx, "timeout", "-k", "5", "10", "brctl", "delbr", name)
	return err
}

// DHCPSubnet returns the dhcpd subnet stanza serving the /24 of ip.
func DHCPSubnet(ip string) string {
	prefix := ip
	if i := strings.LastIndex(ip, "."); i >= 0 {
		prefix = ip[:i]
	}
	return fmt.Sprintf("\nsubnet %s.0 netmask 255.255.255.0 {\n    range %s.50 %s.200;\n}\n", prefix, prefix, prefix)
}

func (l *Linux) StartDHCPServer(ctx context.Context, ifname, ip string) error {
	var conf []byte
	if l.files.Exists(l.paths.DHCPTemplate) {
		b, err := l.files.ReadFile(l.paths.DHCPTemplate)
		if err != nil {
			return err
		}
		conf = b
	}
	conf = append(conf, DHCPSubnet(ip)...)
	if err := l.files.WriteFile(l.paths.DHCPConf, conf); err != nil {
		return err
	}
	if err := l.files.AppendFile(l.paths.DHCPLeases, nil); err != nil {
		return err
	}
	_, err := l.run(ctx, "dhcpd", "-4", "-cf", l.paths.DHCPConf, "-lf", l.paths.DHCPLeases, ifname)
	return err
}

// StartDHCPClient leaves dhclient running in the background.
func (l *Linux) StartDHCPClient(ctx context.Context, ifname string) error {
	_, err := l.run(ctx, "dhclient", "-4", "-nw", ifname)
	return err
}

func (l *Linux) StopDHCPServer(ctx context.Context) error {
	l.best(ctx, "killall", "dhcpd")
	return nil
}

func (l *Linux) StopDHCPClient(ctx context.Context) error {
	l.best(ctx, "killall", "dhclient")
	return nil
}

func (l *Linux) WirelessInterfaces(ctx context.Context) ([]WirelessInterface, error) {
	out, err := l.run(ctx, "iw", "dev")
	if err != nil {
		return nil, err
	}
	return ParseIWDev(out), nil
}

// EnsureWireless creates name as a managed interface on phy0 when missing
// and gives it a unique MAC.
func (l *Linux) EnsureWireless(ctx context.Context, name string) error {
	ifaces, err := l.WirelessInterfaces(ctx)
	if err != nil {
		return err
	}
	if _, ok := findWireless(ifaces, name); ok {
		return nil
	}
	l.log.Info().Str("interface", name).Msg("creating wireless interface")
	if _, err := l.run(ctx, "iw", "phy", "phy0", "interface", "add", name, "type", "managed"); err != nil {
		return err
	}

	ifaces, err = l.WirelessInterfaces(ctx)
	if err != nil {
		return err
	}
	created, ok := findWireless(ifaces, name)
	if !ok || !duplicateAddr(ifaces, created) {
		return nil
	}
	mac, err := BumpMAC(created.Addr, 4)
	if err != nil {
		return err
	}
	_, err = l.run(ctx, "ip", "link", "set", "dev", name, "address", mac)
	return err
}

// ParseIWDev reads the interface list printed by `iw dev`.
func ParseIWDev(out string) []WirelessInterface {
	var list []WirelessInterface
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch {
		case fields[0] == "Interface" && len(fields) > 1:
			list = append(list, WirelessInterface{Name: fields[1]})
		case strings.HasPrefix(line, "Unnamed/non-netdev interface"):
			list = append(list, WirelessInterface{})
		case fields[0] == "addr" && len(fields) > 1 && len(list) > 0:
			list[len(list)-1].Addr = fields[1]
		case fields[0] == "type" && len(fields) > 1 && len(list) > 0:
			list[len(list)-1].Type = fields[1]
		}
	}
	return list
}

// P2PGroup returns the active P2P GO or client interface.
func P2PGroup(ifaces []WirelessInterface) (WirelessInterface, bool) {
	for _, w := range ifaces {
		if w.Type == "P2P-GO" || w.Type == "P2P-client" {
			return w, true
		}
	}
	return WirelessInterface{}, false
}

// P2PAddr prefers the group interface address and falls back to the P2P
// device address.
func P2PAddr(ifaces []WirelessInterface) (string, bool) {
	if g, ok := P2PGroup(ifaces); ok {
		return g.Addr, true
	}
	for _, w := range ifaces {
		if w.Type == "P2P-device" {
			return w.Addr, true
		}
	}
	return "", false
}

// BumpMAC adds delta to the last octet of mac, wrapping at 0xff.
func BumpMAC(mac string, delta int) (string, error) {
	parts := strings.Split(mac, ":")
	if len(parts) != 6 {
		return "", fmt.Errorf("platform: malformed mac %q", mac)
	}
	last, err := strconv.ParseUint(parts[5], 16, 8)
	if err != nil {
		return "", fmt.Errorf("platform: malformed mac %q: %w", mac, err)
	}
	parts[5] = fmt.Sprintf("%02x", (int(last)+delta)&0xff)
	return strings.Join(parts, ":"), nil
}

func findWireless(ifaces []WirelessInterface, name string) (WirelessInterface, bool) {
	for _, w := range ifaces {
		if w.Name == name {
			return w, true
		}
	}
	return WirelessInterface{}, false
}

func duplicateAddr(ifaces []WirelessInterface, w WirelessInterface) bool {
	for _, other := range ifaces {
		if other.Name != w.Name && other.Addr == w.Addr && w.Addr != "" {
			return true
		}
	}
	return false
}
