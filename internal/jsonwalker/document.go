// Package jsonwalker is a reference metrics.Walker driven by a JSON
// document instead of a real parser. Parsing source into syntax trees is
// outside the core's scope; this package is the concrete
// collaborator the CLI uses in its place, replaying a pre-recorded
// sequence of walker events against pkg/metrics' Handlers contract.
package jsonwalker

import "github.com/plexus-metrics/plexus/pkg/metrics"

// Event kinds recognised in a Document's events array.
const (
	EventCreateScope = "createScope"
	EventPopScope    = "popScope"
	EventLLOC        = "lloc"
	EventCyclomatic  = "cyclomatic"
	EventOperator    = "operator"
	EventOperand     = "operand"
	EventDependency  = "dependency"
)

// Event is one step of a Document's replay log.
type Event struct {
	Type string `json:"type"`

	// createScope
	Name    string `json:"name,omitempty"`
	HasName bool   `json:"hasName,omitempty"`
	Line    uint32 `json:"line,omitempty"`
	HasLine bool   `json:"hasLine,omitempty"`
	Params  uint32 `json:"params,omitempty"`

	// lloc / cyclomatic
	Count uint32 `json:"count,omitempty"`

	// operator / operand
	Identifier string `json:"identifier,omitempty"`

	// dependency
	DependencyType string `json:"dependencyType,omitempty"`
	DependencyPath string `json:"dependencyPath,omitempty"`
}

// Document is the JSON-decoded shape of one module's replay log: the
// module's own location plus the ordered events the Module Analyser
// should see during Walk.
type Document struct {
	Path      string  `json:"path"`
	StartLine uint32  `json:"startLine,omitempty"`
	EndLine   uint32  `json:"endLine,omitempty"`
	HasLoc    bool    `json:"hasLoc,omitempty"`
	Events    []Event `json:"events"`
}

// Loc implements metrics.AST.
func (d *Document) Loc() (metrics.LineRange, bool) {
	if !d.HasLoc {
		return metrics.LineRange{}, false
	}

	return metrics.LineRange{StartLine: d.StartLine, EndLine: d.EndLine}, true
}
