package platform

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Paths are the host locations the Linux platform touches.
type Paths struct {
	HostapdBinary    string
	SupplicantBinary string
	HostapdGlobal    string
	HostapdLog       string
	SupplicantLog    string
	DHCPTemplate     string
	DHCPConf         string
	DHCPLeases       string
}

func DefaultPaths() Paths {
	return Paths{
		HostapdBinary:    "/usr/local/bin/WFA-Hostapd-Supplicant/hostapd",
		SupplicantBinary: "/usr/local/bin/WFA-Hostapd-Supplicant/wpa_supplicant",
		HostapdGlobal:    "/run/hostapd-global",
		HostapdLog:       "/var/log/hostapd.log",
		SupplicantLog:    "/var/log/supplicant.log",
		DHCPTemplate:     "QT_dhcpd.conf",
		DHCPConf:         "/etc/dhcp/QT_dhcpd.conf",
		DHCPLeases:       "/var/lib/dhcp/dhcpd.leases_QT",
	}
}

// Linux drives hostapd, wpa_supplicant, iproute2, brctl and ISC dhcp
// through a Runner.
type Linux struct {
	runner Runner
	files  Files
	paths  Paths

	// Settle is how long daemon state is polled after a start or stop.
	Settle time.Duration

	log zerolog.Logger
}

func NewLinux(runner Runner, files Files, paths Paths) *Linux {
	if runner == nil {
		runner = ExecRunner{}
	}
	if files == nil {
		files = NewOSFiles()
	}
	return &Linux{
		runner: runner,
		files:  files,
		paths:  paths,
		Settle: 3 * time.Second,
		log:    log.Logger.With().Str("component", "platform").Logger(),
	}
}

func (l *Linux) Runner() Runner { return l.runner }
func (l *Linux) Files() Files   { return l.files }
func (l *Linux) Paths() Paths   { return l.paths }

// run executes and logs one command, turning a non-zero exit into a
// *CommandError.
func (l *Linux) run(ctx context.Context, name string, args ...string) (string, error) {
	line := CommandLine(name, args...)
	stdout, stderr, code, err := l.runner.Run(ctx, name, args...)
	l.log.Debug().Str("cmd", line).Int32("exit", code).Msg("exec")
	if err != nil || code != 0 {
		return string(stdout), &CommandError{Command: line, ExitCode: code, Stderr: string(stderr), Err: err}
	}
	return string(stdout), nil
}

// best runs a command whose failure is expected in normal operation, such
// as killall with nothing to kill.
func (l *Linux) best(ctx context.Context, name string, args ...string) string {
	out, err := l.run(ctx, name, args...)
	if err != nil {
		l.log.Debug().Err(err).Msg("ignored")
	}
	return out
}

func (l *Linux) pidof(ctx context.Context, name string) bool {
	out, err := l.run(ctx, "pidof", name)
	return err == nil && strings.TrimSpace(out) != ""
}
