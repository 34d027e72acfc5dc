package engine

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownScript = errors.New("unknown script")

// ScriptType describes how a scene file builds, saves and edits one script.
//
// Serialize returns nil when c is not this script. Apply reports whether
// prop was recognized and value had the right type; it may be nil for
// scripts without live editing.
type ScriptType struct {
	New       func(props map[string]any) Component
	Serialize func(c Component) map[string]any
	Apply     func(c Component, prop string, value any) bool
}

var scriptTypes = map[string]ScriptType{}

// RegisterScript adds a script under name. Registering a name twice, or a
// type without New, panics.
func RegisterScript(name string, st ScriptType) {
	if st.New == nil {
		panic(fmt.Sprintf("script %q has no constructor", name))
	}
	if _, exists := scriptTypes[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptTypes[name] = st
}

// CreateScript builds the named script from scene-file props.
func CreateScript(name string, props map[string]any) (Component, error) {
	st, ok := scriptTypes[name]
	if !ok {
		return nil, fmt.Errorf("script %q: %w", name, ErrUnknownScript)
	}
	return st.New(props), nil
}

// SerializeScript finds the script c was registered as and returns its props.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for _, name := range ScriptNames() {
		st := scriptTypes[name]
		if st.Serialize == nil {
			continue
		}
		if props := st.Serialize(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// ScriptNames lists registered scripts in sorted order.
func ScriptNames() []string {
	names := make([]string, 0, len(scriptTypes))
	for name := range scriptTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ApplyScriptProperty sets one prop on a live script component.
func ApplyScriptProperty(c Component, prop string, value any) bool {
	for _, st := range scriptTypes {
		if st.Apply != nil && st.Apply(c, prop, value) {
			return true
		}
	}
	return false
}
