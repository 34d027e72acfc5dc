package input

// Gated passes Provider through only while Cursor is captured, so a released
// pointer can reach the HUD without turning the view.
type Gated struct {
	Provider Provider
	Cursor   Cursor
}

func (g Gated) Sample() State {
	if g.Provider == nil || g.Cursor == nil || !g.Cursor.Captured() {
		return State{}
	}
	return g.Provider.Sample()
}
