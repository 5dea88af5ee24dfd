package jsonwalker

import (
	"fmt"

	"github.com/plexus-metrics/plexus/pkg/metrics"
)

// Walker replays a Document's events against the Handlers it is given.
// It ignores the ast parameter's own Loc (the Module Analyser already
// read it before calling Walk) and settings, since a recorded replay log
// carries no conditional branches to shape.
type Walker struct{}

// Walk implements metrics.Walker.
func (Walker) Walk(ast metrics.AST, _ metrics.Settings, handlers metrics.Handlers) error {
	doc, ok := ast.(*Document)
	if !ok {
		return fmt.Errorf("jsonwalker: ast is %T, want *Document", ast)
	}

	for i, ev := range doc.Events {
		if err := apply(ev, handlers); err != nil {
			return fmt.Errorf("jsonwalker: event %d (%s): %w", i, ev.Type, err)
		}
	}

	return nil
}

func apply(ev Event, h metrics.Handlers) error {
	switch ev.Type {
	case EventCreateScope:
		var loc *metrics.LineRange
		if ev.HasLine {
			loc = &metrics.LineRange{StartLine: ev.Line, EndLine: ev.Line}
		}

		h.CreateScope(ev.Name, ev.HasName, loc, ev.Params)

	case EventPopScope:
		h.PopScope()

	case EventLLOC:
		h.ProcessNode(ev, &metrics.Syntax{LLOC: metrics.Const(ev.Count)})

	case EventCyclomatic:
		h.ProcessNode(ev, &metrics.Syntax{Cyclomatic: metrics.Const(ev.Count)})

	case EventOperator:
		h.ProcessNode(ev, &metrics.Syntax{
			Operators: []metrics.HalsteadToken{identifierToken(ev.Identifier)},
		})

	case EventOperand:
		h.ProcessNode(ev, &metrics.Syntax{
			Operands: []metrics.HalsteadToken{identifierToken(ev.Identifier)},
		})

	case EventDependency:
		dep := metrics.Dependency{
			Type:    ev.DependencyType,
			Path:    ev.DependencyPath,
			Line:    ev.Line,
			HasLine: ev.HasLine,
		}
		h.ProcessNode(ev, &metrics.Syntax{
			Dependencies: func(any, bool) []metrics.Dependency { return []metrics.Dependency{dep} },
		})

	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}

	return nil
}

func identifierToken(identifier string) metrics.HalsteadToken {
	return metrics.HalsteadToken{
		Identifier: func(any) string { return identifier },
	}
}
