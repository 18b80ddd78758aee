// Package nav is a small document model for the page panel: elements with
// class lists and screen bounds, simple selectors, and bubbling click events.
package nav

import (
	"slices"

	"github.com/jbeda/geom"
)

// Element is a node of the page.
type Element struct {
	Tag    string
	ID     string
	Text   string
	Bounds geom.Rect

	classes   []string
	parent    *Element
	children  []*Element
	listeners map[string][]Listener
}

// Listener handles an event delivered to an element.
type Listener func(*Event)

// Event is a dispatched UI event.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
}

func NewElement(tag string, classes ...string) *Element {
	e := &Element{Tag: tag}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return child
}

func (e *Element) Parent() *Element     { return e.parent }
func (e *Element) Children() []*Element { return e.children }

// AddClass adds a class if it is not already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) AddEventListener(typ string, l Listener) {
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[typ] = append(e.listeners[typ], l)
}

// Document is the root of a page.
type Document struct {
	Root *Element
	Body *Element
}

func NewDocument() *Document {
	root := NewElement("html")
	body := root.Append(NewElement("body"))
	return &Document{Root: root, Body: body}
}

// QuerySelector returns the first element in document order that matches
// sel, or nil.
func (d *Document) QuerySelector(sel string) *Element {
	s, err := ParseSelector(sel)
	if err != nil {
		return nil
	}
	var found *Element
	walk(d.Root, func(e *Element) bool {
		if s.Match(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// Dispatch delivers ev to its target and then to each ancestor in turn.
func (d *Document) Dispatch(ev *Event) {
	for e := ev.Target; e != nil; e = e.parent {
		ev.CurrentTarget = e
		for _, l := range e.listeners[ev.Type] {
			l(ev)
		}
	}
}

// Click dispatches a click on target. A nil target is ignored.
func (d *Document) Click(target *Element) {
	if target == nil {
		return
	}
	d.Dispatch(&Event{Type: "click", Target: target})
}

// HitTest returns the deepest element under p inside the body, or nil.
func (d *Document) HitTest(p geom.Coord) *Element {
	return hit(d.Body, p)
}

func hit(e *Element, p geom.Coord) *Element {
	// Later siblings paint over earlier ones.
	for i := len(e.children) - 1; i >= 0; i-- {
		if h := hit(e.children[i], p); h != nil {
			return h
		}
	}
	if contains(e.Bounds, p) {
		return e
	}
	return nil
}

func contains(r geom.Rect, p geom.Coord) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// walk visits e and its descendants depth-first until visit returns false.
func walk(e *Element, visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
