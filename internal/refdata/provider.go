package refdata

import "log/slog"

// Provider loads the two reference datasets: the measurement reference
// table consumed by the resolver, and the axis-matrix table, which is
// opaque to the engine and only ever displayed.
type Provider interface {
	Load() (measurements, axisMatrix Table, err error)
}

// Load wraps a provider and degrades to empty tables when it fails or when
// no provider is configured. Reference data is strictly optional: without
// it the engine still produces a complete report with Unknown statuses.
func Load(p Provider) (measurements, axisMatrix Table) {
	if p == nil {
		return Table{}, Table{}
	}
	m, a, err := p.Load()
	if err != nil {
		slog.Warn("reference data unavailable, classifications degrade to Unknown", "error", err)
		return Table{}, Table{}
	}
	return m, a
}
