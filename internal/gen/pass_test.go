package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatcher-generator/internal/diagnostic"
	"dispatcher-generator/internal/model"
	"dispatcher-generator/internal/plan"
)

func capableUniverse(keys ...string) *model.Universe {
	u := model.NewUniverse()
	u.Add(model.FactoryCapability, &model.TypeNode{})

	for _, k := range keys {
		u.Add(k, &model.TypeNode{Interfaces: []string{model.FactoryCapability}})
	}

	return u
}

func TestRunPass_GeneratesOneArtifactPerDispatcher(t *testing.T) {
	d1 := blogDispatcher()
	d2 := blogDispatcher()
	d2.Name = "OtherFactory"

	g := NewGenerator(DefaultGeneratorConfig())
	result := g.RunPass(PassInput{
		Dispatchers: []*model.Dispatcher{d2, d1},
		ValueTypes:  []*model.ValueType{plainType("Post", 1)},
		Universe:    capableUniverse(d1.Key(), d2.Key()),
	})

	require.True(t, result.Diagnostics.IsValid(), "diagnostics: %v", result.Diagnostics.Error())
	require.Len(t, result.Artifacts, 2)

	// Dispatchers are processed in sorted order.
	assert.Equal(t, "AdapterFactory_BlogFactory", result.Artifacts[0].TypeName)
	assert.Equal(t, "AdapterFactory_OtherFactory", result.Artifacts[1].TypeName)
}

func TestRunPass_NoDispatchersNoOutput(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	result := g.RunPass(PassInput{
		ValueTypes: []*model.ValueType{plainType("Post", 1)},
	})

	assert.Empty(t, result.Artifacts)
	assert.True(t, result.Diagnostics.IsValid())
}

func TestRunPass_NoneOptedInVariant(t *testing.T) {
	// A value type exists but has no factory method: the "none opted in"
	// variant, reported exactly once, with zero artifacts.
	silent := &model.ValueType{
		Package:    "example/blog",
		Name:       "Post",
		Visibility: model.VisibilityPublic,
	}

	d := blogDispatcher()

	g := NewGenerator(DefaultGeneratorConfig())
	result := g.RunPass(PassInput{
		Dispatchers: []*model.Dispatcher{d},
		ValueTypes:  []*model.ValueType{silent},
		Universe:    capableUniverse(d.Key()),
	})

	assert.Empty(t, result.Artifacts)

	optedIn := result.Diagnostics.ByCode(diagnostic.CodeNoneOptedIn)
	require.Len(t, optedIn, 1)
	assert.Equal(t, d.Key(), optedIn[0].Declaration)
	assert.Empty(t, result.Diagnostics.ByCode(diagnostic.CodeNoValueTypes))
}

func TestRunPass_NoValueTypesVariant(t *testing.T) {
	d := blogDispatcher()

	g := NewGenerator(DefaultGeneratorConfig())
	result := g.RunPass(PassInput{
		Dispatchers: []*model.Dispatcher{d},
		Universe:    capableUniverse(d.Key()),
	})

	assert.Empty(t, result.Artifacts)
	assert.Len(t, result.Diagnostics.ByCode(diagnostic.CodeNoValueTypes), 1)
	assert.Empty(t, result.Diagnostics.ByCode(diagnostic.CodeNoneOptedIn))
}

func TestRunPass_NotAbstractReportedButStillGenerated(t *testing.T) {
	d := blogDispatcher()
	d.Abstract = false

	g := NewGenerator(DefaultGeneratorConfig())
	result := g.RunPass(PassInput{
		Dispatchers: []*model.Dispatcher{d},
		ValueTypes:  []*model.ValueType{plainType("Post", 1)},
		Universe:    capableUniverse(d.Key()),
	})

	notAbstract := result.Diagnostics.ByCode(diagnostic.CodeNotAbstract)
	require.Len(t, notAbstract, 1)
	assert.Equal(t, d.Key(), notAbstract[0].Declaration)

	// Generation is still attempted so the user sees the real shape.
	require.Len(t, result.Artifacts, 1)
	assert.Contains(t, string(result.Artifacts[0].File.Content), "return PostAdapter(serializer)")
	assert.NotContains(t, string(result.Artifacts[0].File.Content), "var _ BlogFactory")
}

func TestRunPass_MissingCapabilityReported(t *testing.T) {
	d := blogDispatcher()

	u := model.NewUniverse()
	u.Add(d.Key(), &model.TypeNode{}) // implements nothing

	g := NewGenerator(DefaultGeneratorConfig())
	result := g.RunPass(PassInput{
		Dispatchers: []*model.Dispatcher{d},
		ValueTypes:  []*model.ValueType{plainType("Post", 1)},
		Universe:    u,
	})

	require.Len(t, result.Diagnostics.ByCode(diagnostic.CodeMissingCapability), 1)
	require.Len(t, result.Artifacts, 1)
}

func TestWriteArtifacts_FailureAbandonsOnlyThatDispatcher(t *testing.T) {
	dir := t.TempDir()

	good := blogDispatcher()
	bad := blogDispatcher()
	bad.Name = "BadFactory"

	g := NewGenerator(GeneratorConfig{Prefix: "AdapterFactory", OutputDir: dir})

	goodArtifact, err := g.Generate(planFor(t, good), true)
	require.NoError(t, err)
	goodArtifact.Dir = dir

	badArtifact, err := g.Generate(planFor(t, bad), true)
	require.NoError(t, err)
	// Point the bad artifact at a path that cannot be a directory.
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	badArtifact.Dir = filepath.Join(blocker, "sub")

	var diags diagnostic.Diagnostics
	written := WriteArtifacts([]*GeneratedDispatcher{badArtifact, goodArtifact}, &diags)

	require.Len(t, written, 1)
	assert.FileExists(t, written[0])

	emitErrs := diags.ByCode(diagnostic.CodeEmitFailed)
	require.Len(t, emitErrs, 1)
	assert.Equal(t, bad.Key(), emitErrs[0].Declaration)
}

func planFor(t *testing.T, d *model.Dispatcher) *plan.DispatchPlan {
	t.Helper()

	return plan.Build(d, []*model.ValueType{plainType("Post", 1)}, nil)
}
