// Package plan turns the eligible value types of one dispatcher
// declaration into a deterministic dispatch plan: a name-sorted split
// into plain and generic dispatch groups.
package plan

import (
	"fmt"
	"sort"

	"dispatcher-generator/internal/common"
	"dispatcher-generator/internal/diagnostic"
	"dispatcher-generator/internal/model"
	"dispatcher-generator/internal/resolve"
)

// Pair is one dispatch branch: a value type together with its resolved
// adapter factory method.
type Pair struct {
	Type   *model.ValueType
	Method *model.FactoryMethod
}

// DispatchPlan is the ordered dispatch structure for one dispatcher.
// Generic dispatch always runs first and only for parameterized requests;
// plain dispatch runs unconditionally afterwards. Groups are never
// interleaved.
type DispatchPlan struct {
	Dispatcher *model.Dispatcher
	// Plain holds branches for non-generic value types, in sorted order.
	Plain []Pair
	// Generic holds branches for type-parameterized value types, in
	// sorted order.
	Generic []Pair
}

// Pairs returns all branches, generic group first, matching emission order.
func (p *DispatchPlan) Pairs() []Pair {
	out := make([]Pair, 0, len(p.Generic)+len(p.Plain))
	out = append(out, p.Generic...)
	out = append(out, p.Plain...)

	return out
}

// Empty reports whether the plan has no branches at all.
func (p *DispatchPlan) Empty() bool {
	return common.IsEmpty(p.Plain) && common.IsEmpty(p.Generic)
}

// SortValueTypes orders value types by their name key. The comparator is a
// pure function over the keys, so the resulting dispatch order is total
// and reproducible regardless of discovery order.
func SortValueTypes(types []*model.ValueType) []*model.ValueType {
	sorted := append([]*model.ValueType(nil), types...)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key() < sorted[j].Key()
	})

	return sorted
}

// Build filters the candidate value types against the dispatcher's package
// and classifies the survivors into the plain and generic groups. Input
// order does not matter; types are name-sorted before classification.
//
// Two value types sharing one erased raw type dispatch first-match-wins;
// the collision is recorded as an info diagnostic so it can be reviewed,
// not silently absorbed.
func Build(d *model.Dispatcher, candidates []*model.ValueType, diags *diagnostic.Diagnostics) *DispatchPlan {
	p := &DispatchPlan{Dispatcher: d}

	seen := make(map[string]bool)

	for _, vt := range SortValueTypes(candidates) {
		method, ok := resolve.Eligible(vt, d.Package)
		if !ok {
			continue
		}

		if seen[vt.Key()] {
			if diags != nil {
				diags.AddInfo(diagnostic.CodeDuplicateRawType,
					fmt.Sprintf("duplicate erased type %s: earlier sorted entry wins", vt.Key()),
					d.Key())
			}

			continue
		}

		seen[vt.Key()] = true

		pair := Pair{Type: vt, Method: method}
		if vt.Generic() {
			p.Generic = append(p.Generic, pair)
		} else {
			p.Plain = append(p.Plain, pair)
		}
	}

	return p
}
