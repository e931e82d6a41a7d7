package observability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/dutctl/internal/iface"
	"github.com/danmuck/dutctl/internal/testutil/testlog"
	"github.com/rs/zerolog/log"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordCommand("AP_CONFIGURE", 0, 3*time.Millisecond)
	RecordCommand("AP_CONFIGURE", 1, time.Millisecond)
	RecordDecodeFailure("nack")
	RecordDecodeFailure("dropped")
	RecordDocument("hostapd", true)
	RecordHTTPRequest("GET", "/health", 200)
	log.Info().Msg("observability/metrics: registration idempotent and recording paths executed")
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAdminRouterInterfacesSnapshot(t *testing.T) {
	testlog.Start(t)
	alloc := iface.New("", iface.Slot{Band: iface.Band24G, Name: "wlan0"}, iface.Slot{Band: iface.Band5G, Name: "wlan1"})
	alloc.Assign(iface.Band5G, 1)
	r := NewAdminRouter(alloc, AdminInfo{Version: "v1.0", Started: time.Now()}, log.Logger)

	rr := serve(t, r, "/interfaces")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body struct {
		Default string       `json:"default"`
		Slots   []iface.Slot `json:"slots"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Default != "wlan1" || len(body.Slots) != 2 || body.Slots[1].BSSID != 1 {
		t.Fatalf("unexpected snapshot: %+v", body)
	}
}

func TestAdminRouterHealthCommandsAndMetrics(t *testing.T) {
	testlog.Start(t)
	RecordCommand("GET_MAC_ADDR", 0, time.Millisecond)
	r := NewAdminRouter(nil, AdminInfo{
		Version:  "v1.0",
		Started:  time.Now(),
		Commands: func() []string { return []string{"AP_START_UP", "AP_STOP"} },
	}, log.Logger)

	rr := serve(t, r, "/health")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"version":"v1.0"`) {
		t.Fatalf("health: %d %s", rr.Code, rr.Body.String())
	}
	rr = serve(t, r, "/commands")
	if !strings.Contains(rr.Body.String(), "AP_STOP") {
		t.Fatalf("commands: %s", rr.Body.String())
	}
	rr = serve(t, r, "/interfaces")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without allocator, got %d", rr.Code)
	}
	rr = serve(t, r, "/metrics")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "dutctl_dispatch_commands_total") {
		t.Fatalf("metrics missing dispatch counter: %d", rr.Code)
	}
}

func TestAdminRouterCORS(t *testing.T) {
	testlog.Start(t)
	r := NewAdminRouter(nil, AdminInfo{
		Started:      time.Now(),
		AllowOrigins: []string{"http://localhost:3000"},
	}, log.Logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}

	plain := NewAdminRouter(nil, AdminInfo{Started: time.Now()}, log.Logger)
	rr = httptest.NewRecorder()
	plain.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("cors should be off without origins, got %q", got)
	}
}
