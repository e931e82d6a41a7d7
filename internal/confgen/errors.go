package confgen

import "errors"

var (
	ErrUnknownCapability = errors.New("confgen: unknown capability")
	ErrInvalidValue      = errors.New("confgen: invalid value")
	ErrUnknownWPSMode    = errors.New("confgen: unknown wps mode")
	ErrWPSSettings       = errors.New("confgen: wps settings unavailable")
	ErrNoInterface       = errors.New("confgen: no interface")
	ErrUnknownServerCert = errors.New("confgen: unknown server certificate")
	ErrMultiBSSID        = errors.New("confgen: MBSSID is not fully supported")
)
