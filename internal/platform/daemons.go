package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

// Daemons controls hostapd and wpa_supplicant.
type Daemons interface {
	StartHostapd(ctx context.Context, files []string, debug schema.DebugLevel) error
	StopHostapd(ctx context.Context) error
	HostapdActive(ctx context.Context) bool
	StartSupplicant(ctx context.Context, confPath, ifname string, debug schema.DebugLevel) error
	StopSupplicant(ctx context.Context) error
	SupplicantActive(ctx context.Context) bool
	HostapdCLI(ctx context.Context, ifname string, args ...string) (string, error)
	WpaCLI(ctx context.Context, ifname string, args ...string) (string, error)
}

var _ Daemons = (*Linux)(nil)

var errStillWaiting = errors.New("platform: still waiting")

// await polls probe until it reports want or Settle elapses.
func (l *Linux) await(ctx context.Context, probe func(context.Context) bool, want bool) bool {
	if probe(ctx) == want {
		return true
	}
	if l.Settle <= 0 {
		return false
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second
	_, err := backoff.Retry(ctx, func() (bool, error) {
		if probe(ctx) == want {
			return true, nil
		}
		return false, errStillWaiting
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(l.Settle))
	return err == nil
}

// StartHostapd launches one hostapd process serving every file, which are
// names relative to the hostapd config directory or absolute paths.
func (l *Linux) StartHostapd(ctx context.Context, files []string, debug schema.DebugLevel) error {
	l.best(ctx, "killall", "hostapd")
	if err := l.files.Remove(l.paths.HostapdLog); err != nil {
		l.log.Warn().Err(err).Str("path", l.paths.HostapdLog).Msg("cannot clear hostapd log")
	}

	args := []string{"-B", "-t", "-g", l.paths.HostapdGlobal}
	args = append(args, files...)
	if flags := debug.HostapdFlags(); flags != "" {
		args = append(args, "-f", l.paths.HostapdLog, flags)
	}
	if _, err := l.run(ctx, l.paths.HostapdBinary, args...); err != nil {
		return err
	}
	if !l.await(ctx, l.HostapdActive, true) {
		return fmt.Errorf("%w: hostapd", ErrDaemonNotStarted)
	}
	return nil
}

// StopHostapd is a no-op when hostapd is not running.
func (l *Linux) StopHostapd(ctx context.Context) error {
	if !l.HostapdActive(ctx) {
		return nil
	}
	l.best(ctx, "rfkill", "unblock", "wlan")
	l.best(ctx, "killall", "hostapd")
	if !l.await(ctx, l.HostapdActive, false) {
		return fmt.Errorf("%w: hostapd", ErrDaemonNotStopped)
	}
	return nil
}

func (l *Linux) HostapdActive(ctx context.Context) bool {
	return l.pidof(ctx, "hostapd")
}

// StartSupplicant restarts wpa_supplicant on ifname with confPath. Whether
// it associates is left to the peer to verify.
func (l *Linux) StartSupplicant(ctx context.Context, confPath, ifname string, debug schema.DebugLevel) error {
	if err := l.files.Remove(l.paths.SupplicantLog); err != nil {
		l.log.Warn().Err(err).Str("path", l.paths.SupplicantLog).Msg("cannot clear supplicant log")
	}
	l.best(ctx, "rfkill", "unblock", "wlan")
	l.best(ctx, "killall", "wpa_supplicant")
	l.await(ctx, l.SupplicantActive, false)

	args := []string{"-B", "-t", "-c", confPath, "-i", ifname}
	if flags := debug.SupplicantFlags(); flags != "" {
		args = append(args, flags, "-f", l.paths.SupplicantLog)
	}
	_, err := l.run(ctx, l.paths.SupplicantBinary, args...)
	return err
}

func (l *Linux) StopSupplicant(ctx context.Context) error {
	if !l.SupplicantActive(ctx) {
		return nil
	}
	_, err := l.run(ctx, "killall", "wpa_supplicant")
	return err
}

func (l *Linux) SupplicantActive(ctx context.Context) bool {
	return l.pidof(ctx, "wpa_supplicant")
}

func (l *Linux) HostapdCLI(ctx context.Context, ifname string, args ...string) (string, error) {
	return l.cli(ctx, "hostapd_cli", ifname, args...)
}

func (l *Linux) WpaCLI(ctx context.Context, ifname string, args ...string) (string, error) {
	return l.cli(ctx, "wpa_cli", ifname, args...)
}

// cli runs a control-socket command. The CLIs exit zero on most failures,
// so a FAIL reply is also an error.
func (l *Linux) cli(ctx context.Context, tool, ifname string, args ...string) (string, error) {
	full := append([]string{"-i", ifname}, args...)
	out, err := l.run(ctx, tool, full...)
	if err != nil {
		return out, err
	}
	if strings.HasPrefix(strings.TrimSpace(out), "FAIL") {
		return out, &CommandError{Command: CommandLine(tool, full...), Stderr: strings.TrimSpace(out)}
	}
	return out, nil
}
