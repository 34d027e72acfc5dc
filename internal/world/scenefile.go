package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fpsrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneFile is the on-disk layout of a level.
type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Parent     string            `json:"parent,omitempty"`
	Color      string            `json:"color,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type typeTag struct {
	Type string `json:"type"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// palette is the set of tints a scene file can name.
var palette = []struct {
	name  string
	color rl.Color
}{
	{"LightGray", rl.LightGray}, {"Gray", rl.Gray}, {"DarkGray", rl.DarkGray},
	{"White", rl.White}, {"Beige", rl.Beige}, {"Brown", rl.Brown},
	{"Red", rl.Red}, {"Maroon", rl.Maroon}, {"Orange", rl.Orange},
	{"Gold", rl.Gold}, {"Yellow", rl.Yellow}, {"Lime", rl.Lime},
	{"Green", rl.Green}, {"SkyBlue", rl.SkyBlue}, {"Blue", rl.Blue},
	{"Purple", rl.Purple},
}

// lookupColor resolves a palette name; unknown names are white.
func lookupColor(name string) rl.Color {
	for _, p := range palette {
		if p.name == name {
			return p.color
		}
	}
	return rl.White
}

// colorName is the inverse of lookupColor, or "" for off-palette colors.
func colorName(c rl.Color) string {
	for _, p := range palette {
		if p.color == c {
			return p.name
		}
	}
	return ""
}

// scaleOrOne treats an omitted scale as unit scale.
func scaleOrOne(s [3]float32) rl.Vector3 {
	if s == [3]float32{} {
		return rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return toVec3(s)
}

// LoadScene adds the objects described in the JSON file at path. Parents are
// linked by name once every object exists, so order in the file doesn't matter.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	created := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = toVec3(objDef.Position)
		g.Transform.Rotation = toVec3(objDef.Rotation)
		g.Transform.Scale = scaleOrOne(objDef.Scale)

		for _, raw := range objDef.Components {
			if err := loadComponent(g, raw); err != nil {
				return fmt.Errorf("object %q: %w", objDef.Name, err)
			}
		}

		if objDef.Color != "" {
			w.Tint(g, lookupColor(objDef.Color))
		}
		byName[objDef.Name] = g
		created = append(created, g)
	}

	for i, objDef := range sf.Objects {
		if objDef.Parent == "" {
			continue
		}
		parent, ok := byName[objDef.Parent]
		if !ok {
			return fmt.Errorf("object %q: unknown parent %q", objDef.Name, objDef.Parent)
		}
		parent.AddChild(created[i])
	}

	for _, g := range created {
		w.Scene.AddGameObject(g)
	}

	slog.Info("scene loaded", "path", path, "objects", len(created))
	return nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var tag typeTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return fmt.Errorf("parse component: %w", err)
	}

	if tag.Type == "Script" {
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("parse script: %w", err)
		}
		comp, err := engine.CreateScript(def.Name, def.Props)
		if errors.Is(err, engine.ErrUnknownScript) {
			slog.Warn("unknown script skipped", "object", g.Name, "script", def.Name)
			return nil
		}
		if err != nil {
			return err
		}
		g.AddComponent(comp)
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("parse %s: %w", tag.Type, err)
	}
	comp, ok := engine.CreateComponent(tag.Type, fields)
	if !ok {
		slog.Warn("unknown component skipped", "object", g.Name, "type", tag.Type)
		return nil
	}
	g.AddComponent(comp)
	return nil
}

func toVec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// SaveScene writes every object in the scene, player rig included.
func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		p, r, s := g.Transform.Position, g.Transform.Rotation, g.Transform.Scale
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{p.X, p.Y, p.Z},
			Rotation: [3]float32{r.X, r.Y, r.Z},
			Scale:    [3]float32{s.X, s.Y, s.Z},
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.Name
		}
		if c, ok := w.colors[g.UID]; ok {
			objDef.Color = colorName(c)
		}

		for _, c := range g.Components() {
			raw, err := serializeComponent(c)
			if err != nil {
				return fmt.Errorf("object %q: %w", g.Name, err)
			}
			if raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func serializeComponent(c engine.Component) (json.RawMessage, error) {
	var def any

	if s, ok := c.(engine.Serializable); ok {
		def = s.Serialize()
	} else if name, props, ok := engine.SerializeScript(c); ok {
		def = scriptDef{Type: "Script", Name: name, Props: props}
	} else {
		return nil, nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal component: %w", err)
	}
	return data, nil
}
