// Package metrics holds the process-wide Prometheus registry.
//
// Metrics are opt-in: until InitRegistry is called, IsEnabled reports false
// and constructors in the prometheus subpackage return nil observers, which
// callers treat as "no metrics".
//
// mountinfo is a one-shot command, so metrics are not scraped over HTTP.
// WriteTextfile dumps the registry in the text exposition format for the
// node_exporter textfile collector.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
)

// ErrNotEnabled is returned by WriteTextfile before InitRegistry.
var ErrNotEnabled = errors.New("metrics registry not initialized")

// InitRegistry creates a fresh registry and enables metrics. Calling it
// again discards previously registered collectors.
func InitRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	registry = prometheus.NewRegistry()
	return registry
}

// GetRegistry returns the registry, or nil when metrics are disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	return GetRegistry() != nil
}

// Disable drops the registry.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
}

// WriteTextfile writes every metric of the registry to path. The file is
// written to a temporary name and renamed into place.
func WriteTextfile(path string) error {
	reg := GetRegistry()
	if reg == nil {
		return ErrNotEnabled
	}
	return prometheus.WriteToTextfile(path, reg)
}
