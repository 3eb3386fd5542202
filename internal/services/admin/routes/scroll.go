package routes

import "strings"

// NavigationType distinguishes history traversal from new navigations.
type NavigationType string

const (
	NavigationPush     NavigationType = "push"
	NavigationTraverse NavigationType = "traverse"
)

// Position is a document scroll offset in pixels.
type Position struct {
	Left int `json:"left"`
	Top  int `json:"top"`
}

// Navigation describes one requested transition.
type Navigation struct {
	Path     string
	Type     NavigationType
	Saved    *Position
	Fragment string
}

// ScrollKind names the scroll target variant.
type ScrollKind string

const (
	ScrollSaved   ScrollKind = "saved"
	ScrollElement ScrollKind = "element"
	ScrollTop     ScrollKind = "top"
)

// ScrollTarget tells the client where to scroll after rendering.
type ScrollTarget struct {
	Kind     ScrollKind `json:"kind"`
	Left     int        `json:"left,omitempty"`
	Top      int        `json:"top"`
	Selector string     `json:"el,omitempty"`
	Behavior string     `json:"behavior,omitempty"`
}

// ScrollFor picks the scroll target: a saved position on history
// traversal, then the fragment element, then the top of the page.
func ScrollFor(nav Navigation) ScrollTarget {
	if nav.Type == NavigationTraverse && nav.Saved != nil {
		return ScrollTarget{Kind: ScrollSaved, Left: nav.Saved.Left, Top: nav.Saved.Top}
	}
	if fragment := strings.TrimPrefix(strings.TrimSpace(nav.Fragment), "#"); fragment != "" {
		return ScrollTarget{Kind: ScrollElement, Selector: "#" + fragment, Behavior: "smooth"}
	}
	return ScrollTarget{Kind: ScrollTop, Top: 0}
}
