// Package preview chooses and builds the live demonstration shown next to a
// CSS property or HTML tag in the reference browser.
//
// A CSS property name is classified into one of a fixed set of scenes by
// substring membership against ordered keyword tables. The first table that
// matches wins, so overlapping keywords resolve by table order:
// typography, flexbox, grid, positioning, animation, then the default box.
// Each scene is a scaffold of markup plus one generated <style> block whose
// rules are scoped to fixed pv-* class names; the declarations under test are
// spliced verbatim into the rule for the element being demonstrated.
//
// The package never validates the declarations. A malformed body renders
// whatever the browser makes of it.
package preview

import (
	"strings"
)

// Scene identifies a demonstration layout.
type Scene int

const (
	SceneTypography Scene = iota
	SceneFlexbox
	SceneGridParent
	SceneGridChild
	ScenePositioning
	SceneAnimation
	SceneDefaultBox
)

// String returns the stable name of the scene.
func (s Scene) String() string {
	switch s {
	case SceneTypography:
		return "typography"
	case SceneFlexbox:
		return "flexbox"
	case SceneGridParent:
		return "grid-parent"
	case SceneGridChild:
		return "grid-child"
	case ScenePositioning:
		return "positioning"
	case SceneAnimation:
		return "animation"
	case SceneDefaultBox:
		return "default-box"
	default:
		return "unknown"
	}
}

// Scenes lists every scene in priority order.
func Scenes() []Scene {
	return []Scene{
		SceneTypography,
		SceneFlexbox,
		SceneGridParent,
		SceneGridChild,
		ScenePositioning,
		SceneAnimation,
		SceneDefaultBox,
	}
}

// Keyword tables. Matching is substring containment, not word boundaries.
var (
	typographyKeywords  = []string{"color", "font", "text", "line-height", "letter-spacing", "word", "decoration", "direction", "white-space"}
	flexboxKeywords     = []string{"flex", "justify", "align", "gap", "order", "wrap"}
	gridKeywords        = []string{"grid", "template", "column", "row", "place", "area"}
	gridChildKeywords   = []string{"column", "row", "area", "self"}
	positioningKeywords = []string{"position", "top", "left", "right", "bottom", "z-index"}
	animationKeywords   = []string{"transition", "transform", "animation", "rotate", "scale"}
)

// Preview is the outcome of rendering one property.
type Preview struct {
	Property     string `json:"property"`
	Scene        Scene  `json:"-"`
	SceneName    string `json:"scene"`
	Declarations string `json:"declarations"`
	Markup       string `json:"markup"`
}

// rule pairs a membership test with the scene builder it selects.
type rule struct {
	name    string
	matches func(property string) bool
	scene   func(property string) Scene
}

// Renderer classifies properties and builds scene markup. The zero value is
// not usable; use New or the package-level functions.
type Renderer struct {
	rules []rule
}

// New returns a renderer with the standard rule order.
func New() *Renderer {
	return &Renderer{rules: []rule{
		{name: "typography", matches: containsAny(typographyKeywords), scene: fixed(SceneTypography)},
		{name: "flexbox", matches: containsAny(flexboxKeywords), scene: fixed(SceneFlexbox)},
		{name: "grid", matches: containsAny(gridKeywords), scene: gridScene},
		{name: "positioning", matches: containsAny(positioningKeywords), scene: fixed(ScenePositioning)},
		{name: "animation", matches: containsAny(animationKeywords), scene: fixed(SceneAnimation)},
	}}
}

var defaultRenderer = New()

// Classify returns the scene chosen for a property name.
func Classify(property string) Scene {
	return defaultRenderer.Classify(property)
}

// Render builds the preview markup for a property and its example rule.
func Render(property, css string) string {
	return defaultRenderer.Preview(property, css).Markup
}

// Classify walks the rules in order and returns the first match, falling back
// to the default box.
func (r *Renderer) Classify(property string) Scene {
	for _, rl := range r.rules {
		if rl.matches(property) {
			return rl.scene(property)
		}
	}
	return SceneDefaultBox
}

// Preview extracts the declarations from css, classifies property and builds
// the scene.
func (r *Renderer) Preview(property, css string) Preview {
	decls := ExtractDeclarations(css)
	scene := r.Classify(property)

	return Preview{
		Property:     property,
		Scene:        scene,
		SceneName:    scene.String(),
		Declarations: decls,
		Markup:       build(scene, property, decls),
	}
}

// ExtractDeclarations strips the selector and enclosing braces from a rule,
// leaving the bare declaration body. Input without braces is returned trimmed.
func ExtractDeclarations(css string) string {
	body := strings.TrimSpace(css)
	if i := strings.IndexByte(body, '{'); i >= 0 {
		body = body[i+1:]
	}
	body = strings.TrimSuffix(body, "}")
	return strings.TrimSpace(body)
}

// RenderTag wraps an HTML snippet so the page stylesheet does not leak into it.
func RenderTag(code string) string {
	return `<div style="all:revert; color:#fff; font-family:sans-serif;">` + code + `</div>`
}

func containsAny(keywords []string) func(string) bool {
	return func(property string) bool {
		for _, kw := range keywords {
			if strings.Contains(property, kw) {
				return true
			}
		}
		return false
	}
}

func fixed(s Scene) func(string) Scene {
	return func(string) Scene { return s }
}

// gridScene separates properties placed on grid items from those set on the
// grid container. The grid-template-* family names tracks and areas but is
// declared on the container, so it never takes the item scene.
func gridScene(property string) Scene {
	if strings.Contains(property, "template") {
		return SceneGridParent
	}
	if containsAny(gridChildKeywords)(property) {
		return SceneGridChild
	}
	return SceneGridParent
}
