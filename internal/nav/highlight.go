package nav

const (
	LinkSelector  = ".nav-link"
	BrandSelector = ".brand"
	SmallClass    = "small"
)

// Highlighter shrinks the brand once any nav link is clicked.
type Highlighter struct {
	LinkSelector   string
	TargetSelector string
	Class          string
}

func NewHighlighter() *Highlighter {
	return &Highlighter{
		LinkSelector:   LinkSelector,
		TargetSelector: BrandSelector,
		Class:          SmallClass,
	}
}

// Install registers a single click listener on the document body.
func (h *Highlighter) Install(d *Document) {
	d.Body.AddEventListener("click", func(ev *Event) {
		h.handle(d, ev)
	})
}

func (h *Highlighter) handle(d *Document, ev *Event) {
	if !ev.Target.Matches(h.LinkSelector) {
		return
	}
	if el := d.QuerySelector(h.TargetSelector); el != nil {
		el.AddClass(h.Class)
	}
}
