package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dispatcher-generator/internal/model"
)

const factoryCapability = "adapter.Factory"

func TestImplementsFactory_DirectInterface(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.MyFactory", &model.TypeNode{Interfaces: []string{factoryCapability}})
	u.Add(factoryCapability, &model.TypeNode{})

	assert.True(t, ImplementsFactory(u, "blog.MyFactory", factoryCapability))
}

func TestImplementsFactory_ThroughSupertypeChain(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.MyFactory", &model.TypeNode{Supertype: "blog.BaseFactory"})
	u.Add("blog.BaseFactory", &model.TypeNode{Interfaces: []string{factoryCapability}})
	u.Add(factoryCapability, &model.TypeNode{})

	assert.True(t, ImplementsFactory(u, "blog.MyFactory", factoryCapability))
}

func TestImplementsFactory_ThroughEmbeddedInterfaces(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.MyFactory", &model.TypeNode{Interfaces: []string{"blog.Registry"}})
	u.Add("blog.Registry", &model.TypeNode{Interfaces: []string{factoryCapability}})
	u.Add(factoryCapability, &model.TypeNode{})

	assert.True(t, ImplementsFactory(u, "blog.MyFactory", factoryCapability))
}

func TestImplementsFactory_NotImplemented(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.Plain", &model.TypeNode{Interfaces: []string{"blog.Other"}})
	u.Add("blog.Other", &model.TypeNode{})

	assert.False(t, ImplementsFactory(u, "blog.Plain", factoryCapability))
}

func TestImplementsFactory_UnknownType(t *testing.T) {
	u := model.NewUniverse()

	assert.False(t, ImplementsFactory(u, "blog.Missing", factoryCapability))
}

func TestImplementsFactory_InterfaceCycleTerminates(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.A", &model.TypeNode{Interfaces: []string{"blog.B"}})
	u.Add("blog.B", &model.TypeNode{Interfaces: []string{"blog.A"}})

	// Must terminate and answer false rather than loop.
	assert.False(t, ImplementsFactory(u, "blog.A", factoryCapability))
}

func TestImplementsFactory_SupertypeCycleTerminates(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.A", &model.TypeNode{Supertype: "blog.B"})
	u.Add("blog.B", &model.TypeNode{Supertype: "blog.A"})

	// Must terminate and answer false rather than loop.
	assert.False(t, ImplementsFactory(u, "blog.A", factoryCapability))
}

func TestImplementsFactory_SupertypeCycleStillFindsTarget(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.A", &model.TypeNode{Supertype: "blog.B"})
	u.Add("blog.B", &model.TypeNode{
		Supertype:  "blog.A",
		Interfaces: []string{factoryCapability},
	})
	u.Add(factoryCapability, &model.TypeNode{})

	assert.True(t, ImplementsFactory(u, "blog.A", factoryCapability))
}

func TestImplementsFactory_CycleStillFindsTarget(t *testing.T) {
	u := model.NewUniverse()
	u.Add("blog.A", &model.TypeNode{Interfaces: []string{"blog.B"}})
	u.Add("blog.B", &model.TypeNode{Interfaces: []string{"blog.A", factoryCapability}})
	u.Add(factoryCapability, &model.TypeNode{})

	assert.True(t, ImplementsFactory(u, "blog.A", factoryCapability))
}
