package engine

import "fmt"

// Serializable is implemented by built-in components that scene files can
// describe as {"type": TypeName(), ...fields}.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

var componentRegistry = map[string]func() Serializable{}

// RegisterComponent makes a built-in component constructible by type name.
func RegisterComponent(typeName string, factory func() Serializable) {
	if _, exists := componentRegistry[typeName]; exists {
		panic(fmt.Sprintf("component %q already registered", typeName))
	}
	componentRegistry[typeName] = factory
}

// CreateComponent builds a registered component and applies data to it.
func CreateComponent(typeName string, data map[string]any) (Serializable, bool) {
	factory, ok := componentRegistry[typeName]
	if !ok {
		return nil, false
	}
	c := factory()
	c.Deserialize(data)
	return c, true
}
