package metastore

import (
	"fmt"
	"sort"
)

// ScopeLevel is the breadth of a metadata identifier, from narrowest
// (column, partition, constraint) to widest (catalog). The order is fixed:
// ScopeColumn < ScopeTable < ScopeDatabase < ScopeCatalog.
type ScopeLevel int

const (
	// ScopeColumn covers columns, partitions, constraints and other
	// identifiers narrower than a table.
	ScopeColumn ScopeLevel = iota
	ScopeTable
	ScopeDatabase
	ScopeCatalog
)

// String implements fmt.Stringer.
func (l ScopeLevel) String() string {
	switch l {
	case ScopeColumn:
		return "column"
	case ScopeTable:
		return "table"
	case ScopeDatabase:
		return "database"
	case ScopeCatalog:
		return "catalog"
	default:
		return fmt.Sprintf("scope(%d)", int(l))
	}
}

// Absent marks a positional slot as deliberately unresolved, letting the
// value fall through to a named override or the parameter's default.
// Omission without Absent is only valid for a contiguous trailing (widest)
// suffix of the positional list.
var Absent = absent{}

type absent struct{}

// Values holds resolved parameter values by name. Default providers receive
// the values resolved so far for narrower-or-equal scopes.
type Values map[string]any

// DefaultFunc lazily provides a value for a parameter that has neither a
// positional nor a named source. It may read already-resolved values of
// narrower-or-equal scope; evaluation order is strictly narrow to wide, so a
// provider never observes a still-unresolved wider scope.
type DefaultFunc func(resolved Values) (any, error)

// Param declares one parameter of a facade operation.
type Param struct {
	// Name uniquely identifies the parameter within its operation.
	Name string

	// Scope is the parameter's scope level. Payload objects carry the
	// scope of the entity they describe.
	Scope ScopeLevel

	// Canon is the parameter's position in the canonical wide-to-narrow
	// argument tuple the service contract expects.
	Canon int

	// Default, when non-nil, resolves the parameter if it was omitted.
	// Parameters without a default are required.
	Default DefaultFunc
}

// OpSpec declares the parameters of one logical metastore operation, ordered
// narrow to wide as the public call supplies them. Specs are fixed at client
// setup time and never mutated afterwards.
type OpSpec struct {
	Method string
	Params []Param
}

// Resolve turns a narrow-to-wide positional list plus named overrides into
// the canonical wide-to-narrow argument tuple.
//
// Positional values are consumed in declaration order; trailing parameters
// may be left off entirely, and Absent skips a slot without shifting the
// rest. Named overrides always win over positional values. Remaining holes
// are filled by the parameters' default providers, evaluated narrow to wide.
//
// Resolution is pure and shares no state between calls; it fails with
// ErrTooManyArguments, ErrUnknownParameter or ErrMissingParameter before any
// remote interaction can happen.
func (s *OpSpec) Resolve(positional []any, overrides Values) ([]any, error) {
	if len(positional) > len(s.Params) {
		return nil, fmt.Errorf("%w: %s declares %d parameters, got %d positional values",
			ErrTooManyArguments, s.Method, len(s.Params), len(positional))
	}

	resolved := make(Values, len(s.Params))
	for i := range positional {
		if _, skip := positional[i].(absent); skip {
			continue
		}
		resolved[s.Params[i].Name] = positional[i]
	}

	matched := 0
	for i := range s.Params {
		if v, ok := overrides[s.Params[i].Name]; ok {
			resolved[s.Params[i].Name] = v
			matched++
		}
	}
	if matched != len(overrides) {
		return nil, fmt.Errorf("%w: %q is not declared by %s",
			ErrUnknownParameter, unknownOverride(s, overrides), s.Method)
	}

	for i := range s.Params {
		p := &s.Params[i]
		if _, ok := resolved[p.Name]; ok {
			continue
		}
		if p.Default == nil {
			return nil, fmt.Errorf("%w: %q (%s scope) in %s",
				ErrMissingParameter, p.Name, p.Scope, s.Method)
		}
		v, err := p.Default(resolved)
		if err != nil {
			return nil, fmt.Errorf("default for %q in %s: %w", p.Name, s.Method, err)
		}
		resolved[p.Name] = v
	}

	canonical := make([]any, len(s.Params))
	for i := range s.Params {
		canonical[s.Params[i].Canon] = resolved[s.Params[i].Name]
	}
	return canonical, nil
}

// unknownOverride picks the first unknown override name in lexical order so
// the error message is deterministic.
func unknownOverride(s *OpSpec, overrides Values) string {
	declared := make(map[string]struct{}, len(s.Params))
	for i := range s.Params {
		declared[s.Params[i].Name] = struct{}{}
	}
	var unknown []string
	for name := range overrides {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown[0]
}

// Override supplies a parameter by name, taking precedence over its
// positional value. Build overrides with With, InCatalog or InDatabase.
type Override struct {
	Name  string
	Value any
}

// With names a parameter value explicitly.
func With(name string, value any) Override {
	return Override{Name: name, Value: value}
}

// InCatalog overrides the catalog_name parameter.
func InCatalog(name string) Override {
	return With("catalog_name", name)
}

// InDatabase overrides the database_name parameter.
func InDatabase(name string) Override {
	return With("database_name", name)
}

// identifierOverrides keeps only the catalog and database overrides. Used by
// existence probes that share an operation's outer scopes but not its call
// options.
func identifierOverrides(overrides []Override) []Override {
	var kept []Override
	for _, o := range overrides {
		if o.Name == "catalog_name" || o.Name == "database_name" {
			kept = append(kept, o)
		}
	}
	return kept
}

// overrideValues flattens an Override list into a Values map.
// Later entries win when a name repeats.
func overrideValues(overrides []Override) Values {
	if len(overrides) == 0 {
		return nil
	}
	vals := make(Values, len(overrides))
	for _, o := range overrides {
		vals[o.Name] = o.Value
	}
	return vals
}
