package dom

import (
	"fmt"
	"sync"
)

// MutationOp is the type of a recorded tree mutation.
type MutationOp uint8

const (
	MutSetText    MutationOp = 0x01 // Replace text content
	MutSetHTML    MutationOp = 0x02 // Replace children with raw markup
	MutSetAttr    MutationOp = 0x03 // Set/update attribute
	MutRemoveAttr MutationOp = 0x04 // Remove attribute
	MutSetStyle   MutationOp = 0x05 // Set/remove inline style property
	MutSetProp    MutationOp = 0x06 // Set element property
	MutSetValue   MutationOp = 0x07 // Set form-control value
	MutInsertNode MutationOp = 0x08 // Insert new node
	MutRemoveNode MutationOp = 0x09 // Remove node
	MutMoveNode   MutationOp = 0x0A // Move node to new position
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case MutSetText:
		return "SetText"
	case MutSetHTML:
		return "SetHTML"
	case MutSetAttr:
		return "SetAttr"
	case MutRemoveAttr:
		return "RemoveAttr"
	case MutSetStyle:
		return "SetStyle"
	case MutSetProp:
		return "SetProp"
	case MutSetValue:
		return "SetValue"
	case MutInsertNode:
		return "InsertNode"
	case MutRemoveNode:
		return "RemoveNode"
	case MutMoveNode:
		return "MoveNode"
	default:
		return "Unknown"
	}
}

// Mutation is one recorded tree change. Observers receive mutations
// synchronously, in the order they happen.
type Mutation struct {
	Op        MutationOp
	NID       string   // Target node identity
	ParentNID string   // Parent identity for insert/remove/move
	Index     int      // Position for insert/move
	Key       string   // Attribute/style/property name
	Value     string   // New value (string form)
	Node      *Element // Inserted subtree for MutInsertNode
}

// NIDGenerator hands out unique node identities ("n1", "n2", ...).
type NIDGenerator struct {
	counter uint64
	mu      sync.Mutex
}

// NewNIDGenerator creates a new NIDGenerator.
func NewNIDGenerator() *NIDGenerator {
	return &NIDGenerator{}
}

// Next returns the next node identity.
func (g *NIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("n%d", g.counter)
}

// Document owns a root element, assigns node identities, and fans recorded
// mutations out to observers. A document is single-writer: callers that
// mutate from multiple goroutines must serialize externally.
type Document struct {
	root      *Element
	gen       *NIDGenerator
	observers []func(Mutation)
}

// NewDocument wraps root in a document, adopting the whole subtree. A nil
// root yields a document with an empty body element so that callers can
// compose unconditionally.
func NewDocument(root *Element) *Document {
	if root == nil {
		root = NewElement("body")
	}
	d := &Document{root: root, gen: NewNIDGenerator()}
	d.adopt(root)
	return d
}

// Root returns the document root element.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// Observe registers a mutation observer. Observers run synchronously inside
// the mutating call; they must not mutate the document themselves.
func (d *Document) Observe(fn func(Mutation)) {
	if d == nil || fn == nil {
		return
	}
	d.observers = append(d.observers, fn)
}

// ByNID finds the node with the given identity, or nil.
func (d *Document) ByNID(nid string) *Element {
	if d == nil || nid == "" {
		return nil
	}
	if d.root.NID() == nid {
		return d.root
	}
	return d.root.Query(func(e *Element) bool { return e.nid == nid })
}

// adopt assigns document ownership and identities through a subtree.
func (d *Document) adopt(e *Element) {
	if d == nil || e == nil {
		return
	}
	e.doc = d
	if e.nid == "" {
		e.nid = d.gen.Next()
	}
	for _, c := range e.children {
		d.adopt(c)
	}
}

func (d *Document) emit(m Mutation) {
	if d == nil {
		return
	}
	for _, fn := range d.observers {
		fn(m)
	}
}

// notify forwards a mutation to the owning document, if any.
func (e *Element) notify(m Mutation) {
	if e == nil || e.doc == nil {
		return
	}
	e.doc.emit(m)
}
