package live

import (
	"github.com/doeixd/dom"
	"github.com/doeixd/dom/pkg/render"
)

// Patch is the wire form of one document mutation.
type Patch struct {
	Op     string `json:"op"`
	NID    string `json:"nid,omitempty"`
	Parent string `json:"parent,omitempty"`
	Index  int    `json:"index,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	HTML   string `json:"html,omitempty"`
}

// patchRenderer serializes inserted subtrees with node identities so the
// client can address them later.
var patchRenderer = render.New(render.Config{IncludeNIDs: true})

// encodePatch converts a recorded mutation into its wire form.
func encodePatch(m dom.Mutation) Patch {
	p := Patch{
		Op:     m.Op.String(),
		NID:    m.NID,
		Parent: m.ParentNID,
		Index:  m.Index,
		Key:    m.Key,
		Value:  m.Value,
	}
	if m.Op == dom.MutInsertNode && m.Node != nil {
		p.HTML = patchRenderer.String(m.Node)
	}
	return p
}

// Frame is one WebSocket message. Type is "init" (full HTML), "patch"
// (mutations), or "event" (client to server).
type Frame struct {
	Type    string  `json:"type"`
	HTML    string  `json:"html,omitempty"`
	Patches []Patch `json:"patches,omitempty"`
	Event   *Event  `json:"event,omitempty"`
}

// Event is a client DOM event addressed to a registered handler.
type Event struct {
	NID   string `json:"nid"`
	Name  string `json:"event"`
	Value string `json:"value,omitempty"`
}
