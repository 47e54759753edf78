package plan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatcher-generator/internal/diagnostic"
	"dispatcher-generator/internal/model"
)

func valueType(pkg, name string, typeParams int) *model.ValueType {
	vt := &model.ValueType{
		Package:    pkg,
		Name:       name,
		Visibility: model.VisibilityPublic,
		TypeParams: typeParams,
	}
	vt.Methods = []model.FactoryMethod{{
		Name:       name + "Adapter",
		Visibility: model.VisibilityPublic,
		Static:     true,
		Returns:    model.AdapterOf(vt.Key()),
	}}

	return vt
}

func dispatcher(pkg, name string) *model.Dispatcher {
	return &model.Dispatcher{
		Package:    pkg,
		Name:       name,
		Visibility: model.VisibilityPublic,
		Abstract:   true,
	}
}

func TestBuild_SplitsPlainAndGeneric(t *testing.T) {
	candidates := []*model.ValueType{
		valueType("example/blog", "Post", 0),
		valueType("example/blog", "Pair", 2),
		valueType("example/blog", "Comment", 0),
		valueType("example/blog", "Box", 1),
	}

	p := Build(dispatcher("example/blog", "BlogFactory"), candidates, nil)

	require.Len(t, p.Plain, 2)
	require.Len(t, p.Generic, 2)

	// Sorted by key within each group.
	assert.Equal(t, "Comment", p.Plain[0].Type.Name)
	assert.Equal(t, "Post", p.Plain[1].Type.Name)
	assert.Equal(t, "Box", p.Generic[0].Type.Name)
	assert.Equal(t, "Pair", p.Generic[1].Type.Name)

	// Groups are never interleaved: every generic branch has type
	// parameters, no plain branch does.
	for _, pair := range p.Generic {
		assert.True(t, pair.Type.Generic())
	}
	for _, pair := range p.Plain {
		assert.False(t, pair.Type.Generic())
	}
}

func TestBuild_OrderIndependentOfInput(t *testing.T) {
	base := []*model.ValueType{
		valueType("example/blog", "Post", 0),
		valueType("example/blog", "Comment", 0),
		valueType("example/blog", "Author", 0),
		valueType("example/blog", "Pair", 2),
		valueType("example/blog", "Box", 1),
	}

	d := dispatcher("example/blog", "BlogFactory")
	reference := Build(d, base, nil)

	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 10; iter++ {
		shuffled := append([]*model.ValueType(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		p := Build(d, shuffled, nil)

		require.Len(t, p.Plain, len(reference.Plain))
		for i := range p.Plain {
			assert.Equal(t, reference.Plain[i].Type.Key(), p.Plain[i].Type.Key())
		}

		require.Len(t, p.Generic, len(reference.Generic))
		for i := range p.Generic {
			assert.Equal(t, reference.Generic[i].Type.Key(), p.Generic[i].Type.Key())
		}
	}
}

func TestBuild_FiltersByVisibility(t *testing.T) {
	local := valueType("example/blog", "note", 0)
	local.Visibility = model.VisibilityPackage

	candidates := []*model.ValueType{
		valueType("example/blog", "Post", 0),
		local,
	}

	// Same package: both included.
	p := Build(dispatcher("example/blog", "BlogFactory"), candidates, nil)
	assert.Len(t, p.Plain, 2)

	// Other package: the package-visible type drops out.
	p = Build(dispatcher("example/feeds", "FeedFactory"), candidates, nil)
	require.Len(t, p.Plain, 1)
	assert.Equal(t, "Post", p.Plain[0].Type.Name)
}

func TestBuild_SkipsTypesWithoutFactoryMethod(t *testing.T) {
	noMethod := &model.ValueType{
		Package:    "example/blog",
		Name:       "Tag",
		Visibility: model.VisibilityPublic,
	}

	p := Build(dispatcher("example/blog", "BlogFactory"),
		[]*model.ValueType{noMethod, valueType("example/blog", "Post", 0)}, nil)

	require.Len(t, p.Plain, 1)
	assert.Equal(t, "Post", p.Plain[0].Type.Name)
}

func TestBuild_DuplicateRawTypeFirstWinsAndIsFlagged(t *testing.T) {
	first := valueType("example/blog", "Post", 0)
	second := valueType("example/blog", "Post", 0)
	second.Methods[0].Name = "OtherPostAdapter"

	var diags diagnostic.Diagnostics
	p := Build(dispatcher("example/blog", "BlogFactory"),
		[]*model.ValueType{first, second}, &diags)

	require.Len(t, p.Plain, 1)
	assert.Equal(t, "PostAdapter", p.Plain[0].Method.Name,
		"earlier sorted entry wins; later duplicate is dropped")

	flagged := diags.ByCode(diagnostic.CodeDuplicateRawType)
	require.Len(t, flagged, 1)
	assert.Equal(t, "example/blog.BlogFactory", flagged[0].Declaration)
}

func TestDispatchPlan_PairsAndEmpty(t *testing.T) {
	empty := Build(dispatcher("example/blog", "BlogFactory"), nil, nil)
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.Pairs())

	p := Build(dispatcher("example/blog", "BlogFactory"), []*model.ValueType{
		valueType("example/blog", "Post", 0),
		valueType("example/blog", "Box", 1),
	}, nil)

	pairs := p.Pairs()
	require.Len(t, pairs, 2)
	// Generic group first, matching emission order.
	assert.Equal(t, "Box", pairs[0].Type.Name)
	assert.Equal(t, "Post", pairs[1].Type.Name)
}
