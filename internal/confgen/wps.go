package confgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WPSRole selects which settings file is read.
type WPSRole int

const (
	WPSRoleAP WPSRole = iota
	WPSRoleSTA
)

func (r WPSRole) String() string {
	if r == WPSRoleAP {
		return "APUT"
	}
	return "STAUT"
}

// WPSSetting is one key:value:tag line. Tag starts with 1 for out-of-band
// only settings and 2 for settings shared by every mode.
type WPSSetting struct {
	Key   string
	Value string
	Tag   string
}

func (s WPSSetting) OOBOnly() bool { return strings.HasPrefix(s.Tag, "1") }
func (s WPSSetting) Common() bool  { return strings.HasPrefix(s.Tag, "2") }

// WPSSource supplies WPS settings prepared outside the agent.
type WPSSource interface {
	Settings(role WPSRole) ([]WPSSetting, error)
}

// FileWPSSource reads /tmp/wsc_settings_<ROLE> style files.
type FileWPSSource struct {
	Dir string
}

// DefaultWPSDir is where the test harness drops WPS settings.
const DefaultWPSDir = "/tmp"

func (f FileWPSSource) Path(role WPSRole) string {
	dir := f.Dir
	if dir == "" {
		dir = DefaultWPSDir
	}
	return fmt.Sprintf("%s/wsc_settings_%s", strings.TrimRight(dir, "/"), role)
}

func (f FileWPSSource) Settings(role WPSRole) ([]WPSSetting, error) {
	path := f.Path(role)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWPSSettings, role, err)
	}
	defer file.Close()
	return ParseWPSSettings(file)
}

// ParseWPSSettings reads key:value:tag lines. The value may itself contain
// colons; the tag is always the last field.
func ParseWPSSettings(r io.Reader) ([]WPSSetting, error) {
	var out []WPSSetting
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: malformed wps setting %q", ErrInvalidValue, line)
		}
		s := WPSSetting{Key: parts[0], Value: parts[1]}
		if len(parts) > 2 {
			s.Value = strings.Join(parts[1:len(parts)-1], ":")
			s.Tag = parts[len(parts)-1]
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// StaticWPSSource serves fixed settings.
type StaticWPSSource map[WPSRole][]WPSSetting

func (s StaticWPSSource) Settings(role WPSRole) ([]WPSSetting, error) {
	settings, ok := s[role]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWPSSettings, role)
	}
	return settings, nil
}
