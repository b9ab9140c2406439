package platform

// NewProbeFrom exposes the injectable constructor for tests.
var NewProbeFrom = newProbe
