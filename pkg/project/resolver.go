package project

import (
	"path"

	"github.com/plexus-metrics/plexus/pkg/metrics"
)

const commonJSType = "CommonJS"

// resolves reports whether dependency d, emitted by the module at from,
// refers to the module at to. Resolution is purely textual: no semantic
// module resolution is performed.
func resolves(from string, d metrics.Dependency, to string) bool {
	if d.Type == commonJSType && !isRelativeReference(d.Path) {
		return false
	}

	fromAbs := absolute(from)
	toAbs := absolute(to)
	depAbs := absolute(path.Join(path.Dir(fromAbs), d.Path))

	if path.Ext(d.Path) == "" {
		if path.Join(depAbs, "index.js") == toAbs {
			return true
		}

		return depAbs+path.Ext(toAbs) == toAbs
	}

	return depAbs == toAbs
}
