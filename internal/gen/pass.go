package gen

import (
	"fmt"
	"sort"

	"dispatcher-generator/internal/common"
	"dispatcher-generator/internal/diagnostic"
	"dispatcher-generator/internal/model"
	"dispatcher-generator/internal/plan"
	"dispatcher-generator/internal/resolve"
)

// PassInput is everything one generation pass consumes: the fully
// resolved declarations produced by a host frontend.
type PassInput struct {
	Dispatchers []*model.Dispatcher
	ValueTypes  []*model.ValueType
	Universe    *model.Universe
}

// PassResult is the outcome of one generation pass. The pass always
// completes; problems surface as diagnostics, never as an abort.
type PassResult struct {
	Artifacts   []*GeneratedDispatcher
	Diagnostics diagnostic.Diagnostics
}

// RunPass plans and assembles every dispatcher declaration independently.
// Invalid declarations (not abstract, capability missing) are reported and
// still generated best-effort, so the real generated shape is visible next
// to the diagnostic.
func (g *Generator) RunPass(input PassInput) *PassResult {
	result := &PassResult{}

	if len(input.Dispatchers) == 0 {
		return result
	}

	dispatchers := append([]*model.Dispatcher(nil), input.Dispatchers...)
	sort.Slice(dispatchers, func(i, j int) bool {
		return dispatchers[i].Key() < dispatchers[j].Key()
	})

	optedIn := 0
	for _, vt := range input.ValueTypes {
		if resolve.FactoryMethodOf(vt) != nil {
			optedIn++
		}
	}

	// Nothing can produce output this pass: report once, against the
	// first declaration, and distinguish the two empty-input cases.
	if optedIn == 0 {
		first, _ := common.First(dispatchers)
		reportable := first.Key()

		if !common.IsEmpty(input.ValueTypes) {
			result.Diagnostics.AddError(diagnostic.CodeNoneOptedIn,
				"cannot generate an adapter factory: value types were found, but none of them "+
					"declare the static factory method required to opt in",
				reportable)
		} else {
			result.Diagnostics.AddError(diagnostic.CodeNoValueTypes,
				"cannot generate an adapter factory: no value type declarations were found",
				reportable)
		}

		return result
	}

	for _, d := range dispatchers {
		valid := true

		if !d.Abstract {
			result.Diagnostics.AddError(diagnostic.CodeNotAbstract, "must be abstract", d.Key())

			valid = false
		}

		if input.Universe == nil || !resolve.ImplementsFactory(input.Universe, d.Key(), model.FactoryCapability) {
			result.Diagnostics.AddError(diagnostic.CodeMissingCapability,
				"must implement adapter.Factory", d.Key())

			valid = false
		}

		p := plan.Build(d, input.ValueTypes, &result.Diagnostics)

		artifact, err := g.Generate(p, valid)
		if err != nil {
			result.Diagnostics.AddError(diagnostic.CodeEmitFailed,
				fmt.Sprintf("failed to assemble adapter factory: %v", err), d.Key())

			continue
		}

		result.Artifacts = append(result.Artifacts, artifact)
	}

	return result
}
