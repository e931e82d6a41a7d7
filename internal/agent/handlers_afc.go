package agent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

// The reference AFC client operates on 6 GHz channel 39.
const afcOperChannel = 39

// Geo-area shapes carried in LOCATION_GEO_AREA and the tags each requires.
var afcGeoAreas = map[int][]schema.Tag{
	0: {schema.TagEllipseCenter, schema.TagEllipseMajorAxis, schema.TagEllipseMinorAxis},
	1: {schema.TagLinearpolyBoundary},
	2: {schema.TagRadialpolyCenter, schema.TagRadialpolyBoundary},
}

var spectrumRequestKinds = map[int]string{
	0: "channel and frequency based",
	1: "channel based",
	2: "frequency based",
}

var testFrameWidths = map[int]string{
	0: "20MHz",
	1: "40MHz",
	2: "80MHz",
	3: "160MHz",
}

func (s *Service) afcConfigure(_ context.Context, req dispatch.Request) dispatch.Result {
	if err := s.checkAFCConfig(req.Params); err != nil {
		return dispatch.Failf("Unable to configure AFC commands.[%v]", err)
	}
	return dispatch.OK("AFC configure completed : Successful")
}

func (s *Service) checkAFCConfig(params protocol.Params) error {
	url, ok := params.Get(schema.TagAFCServerURL)
	if !ok {
		return errors.New(missing(schema.TagAFCServerURL))
	}
	if !params.Has(schema.TagAFCCACert) {
		return errors.New(missing(schema.TagAFCCACert))
	}
	area := -1
	if raw, ok := params.Get(schema.TagLocationGeoArea); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid LOCATION_GEO_AREA %q", raw)
		}
		for _, tag := range afcGeoAreas[n] {
			if !params.Has(tag) {
				return errors.New(missing(tag))
			}
		}
		area = n
	}
	security, _ := params.Get(schema.TagSecurityType)
	s.log.Info().
		Str("server", url).
		Str("security_type", security).
		Int("geo_area", area).
		Msg("afc configured")
	return nil
}

func (s *Service) afcOperation(_ context.Context, req dispatch.Request) dispatch.Result {
	p := req.Params
	if p.Has(schema.TagDeviceReset) {
		s.log.Info().Msg("afc operation: device reset")
	}
	if kind, ok := enumParam(p, schema.TagSendSpectrumReq, spectrumRequestKinds); ok {
		s.log.Info().Str("kind", kind).Msg("afc operation: send spectrum request")
	}
	if p.Has(schema.TagPowerCycle) {
		s.log.Info().Msg("afc operation: power cycle")
	}
	if width, ok := enumParam(p, schema.TagSendTestFrame, testFrameWidths); ok {
		s.log.Info().Str("bandwidth", width).Msg("afc operation: send test frames")
	}
	return dispatch.OK("AFC operation completed : Successful")
}

func enumParam(p protocol.Params, tag schema.Tag, names map[int]string) (string, bool) {
	raw, ok := p.Get(tag)
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	name, ok := names[n]
	return name, ok
}

func (s *Service) afcGetInfo(context.Context, dispatch.Request) dispatch.Result {
	freq := 5950 + 5*afcOperChannel
	return dispatch.OK("Successful to get AFC required information",
		protocol.Param{Tag: schema.TagOperChannel, Value: strconv.Itoa(afcOperChannel)},
		protocol.Param{Tag: schema.TagOperFreq, Value: strconv.Itoa(freq)},
	)
}
