package agent

import (
	"testing"

	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/testutil/testlog"
)

func TestAFCConfigure(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)
	url := p(schema.TagAFCServerURL, "https://afc.example:443")
	cert := p(schema.TagAFCCACert, "/tmp/ca.pem")

	cases := []struct {
		name string
		msg  string
		ok   bool
		args []schemaParam
	}{
		{"no server", "Unable to configure AFC commands.[Missed TLV: AFC_SERVER_URL]", false, nil},
		{"ellipse", "AFC configure completed : Successful", true, []schemaParam{
			{schema.TagLocationGeoArea, "0"}, {schema.TagEllipseCenter, "-122,37"},
			{schema.TagEllipseMajorAxis, "100"}, {schema.TagEllipseMinorAxis, "50"},
		}},
		{"ellipse missing axis", "Unable to configure AFC commands.[Missed TLV: ELLIPSE_MAJOR_AXIS]", false, []schemaParam{
			{schema.TagLocationGeoArea, "0"}, {schema.TagEllipseCenter, "-122,37"},
		}},
		{"linear polygon", "AFC configure completed : Successful", true, []schemaParam{
			{schema.TagLocationGeoArea, "1"}, {schema.TagLinearpolyBoundary, "-122,37 -121,37 -121,38"},
		}},
	}
	for _, tc := range cases {
		params := toParams(tc.args)
		if tc.name != "no server" {
			params = append(params, url, cert)
		}
		r := h.call(t, schema.MsgAFCConfigure, params...)
		if tc.ok {
			expectOK(t, r, tc.msg)
		} else {
			expectFail(t, r, tc.msg)
		}
	}
	expectFail(t, h.call(t, schema.MsgAFCConfigure, url), "Unable to configure AFC commands.[Missed TLV: AFC_CA_CERT]")
}

func TestAFCOperationAndInfo(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)
	r := h.call(t, schema.MsgAFCOperation,
		p(schema.TagDeviceReset, "1"), p(schema.TagSendSpectrumReq, "1"), p(schema.TagSendTestFrame, "3"))
	expectOK(t, r, "AFC operation completed : Successful")

	r = h.call(t, schema.MsgAFCGetInfo)
	expectOK(t, r, "Successful to get AFC required information")
	ch, _ := r.Params.Get(schema.TagOperChannel)
	freq, _ := r.Params.Get(schema.TagOperFreq)
	if ch != "39" || freq != "6145" {
		t.Fatalf("afc info channel=%q freq=%q", ch, freq)
	}
	if tags := r.Params.Tags(); len(tags) < 4 || tags[2] != schema.TagOperChannel || tags[3] != schema.TagOperFreq {
		t.Fatalf("unexpected tag order %v", tags)
	}
}
