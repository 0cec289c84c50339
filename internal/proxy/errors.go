package proxy

import "errors"

var errProbeTimeout = errors.New("proxy: alternate-protocol probe timed out waiting for the full sentinel")
