package confgen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWPSSettings(t *testing.T) {
	in := "wps_state:2:1\ndevice_name:QT:AP:2\n\nuuid:abc\n"
	got, err := ParseWPSSettings(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 settings, got %+v", got)
	}
	if !got[0].OOBOnly() || got[0].Value != "2" {
		t.Fatalf("unexpected first setting %+v", got[0])
	}
	if got[1].Value != "QT:AP" || !got[1].Common() {
		t.Fatalf("value with colon must be kept, got %+v", got[1])
	}
	if got[2].Tag != "" || got[2].Value != "abc" {
		t.Fatalf("two-field line: %+v", got[2])
	}
	if _, err := ParseWPSSettings(strings.NewReader("novalue\n")); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestFileWPSSource(t *testing.T) {
	dir := t.TempDir()
	src := FileWPSSource{Dir: dir}
	if got := src.Path(WPSRoleAP); got != filepath.Join(dir, "wsc_settings_APUT") {
		t.Fatalf("unexpected path %q", got)
	}
	if _, err := src.Settings(WPSRoleSTA); !errors.Is(err, ErrWPSSettings) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file error, got %v", err)
	}
	if err := os.WriteFile(src.Path(WPSRoleSTA), []byte("device_name:QT:2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := src.Settings(WPSRoleSTA)
	if err != nil || len(got) != 1 || got[0].Key != "device_name" {
		t.Fatalf("settings = %+v, %v", got, err)
	}
	if (FileWPSSource{}).Path(WPSRoleAP) != "/tmp/wsc_settings_APUT" {
		t.Fatalf("default dir")
	}
}
