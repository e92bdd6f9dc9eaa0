// Package simulation defines the on-disk record types describing bodies
// that can be entered into the simulation.
package simulation

// Body is one simulation object record. The JSON field names are the
// stable on-disk format; files written by older builds must keep loading.
type Body struct {
	Name    string             `json:"name"`
	Physics PhysicsProperties  `json:"compute values"`
	Entry   EntryConfiguration `json:"enter simulation values"`
}

// PhysicsProperties are the values the simulation computes with.
type PhysicsProperties struct {
	Mass   float32 `json:"mass"`
	Radius float32 `json:"radius"`
}

// EntryConfiguration is the state a body enters the simulation with.
type EntryConfiguration struct {
	Speed    [3]float32 `json:"enter speed"`
	Position [3]float32 `json:"enter position"`
}
