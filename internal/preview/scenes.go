package preview

import (
	"strings"
)

// AccentColor is the background given to the default box when the property
// under test does not set one itself.
const AccentColor = "#6c63ff"

// Class names used by the generated style blocks. They are fixed so every
// render replaces the previous preview's rules instead of adding to them.
const (
	classText      = "pv-text"
	classFlexBox   = "pv-flex-parent"
	classFlexItem  = "pv-flex-child"
	classGridBox   = "pv-grid-parent"
	classGridItem  = "pv-grid-child"
	classGridFocus = "pv-target"
	classPosBox    = "pv-pos-parent"
	classPosItem   = "pv-pos-box"
	classAnimBox   = "pv-anim-box"
	classDefault   = "pv-def-box"
)

// RuleNames returns the membership rules in evaluation order.
func (r *Renderer) RuleNames() []string {
	names := make([]string, len(r.rules))
	for i, rl := range r.rules {
		names[i] = rl.name
	}
	return names
}

func build(scene Scene, property, decls string) string {
	switch scene {
	case SceneTypography:
		return typographyScene(decls)
	case SceneFlexbox:
		return flexboxScene(decls)
	case SceneGridChild:
		return gridChildScene(decls)
	case SceneGridParent:
		return gridParentScene(decls)
	case ScenePositioning:
		return positioningScene(decls)
	case SceneAnimation:
		return animationScene(decls)
	default:
		return defaultBoxScene(property, decls)
	}
}

// splice inserts the declarations followed by the scaffold's own
// declarations, separated by a single space when both are present.
func splice(decls, scaffold string) string {
	if decls == "" {
		return scaffold
	}
	return decls + " " + scaffold
}

func typographyScene(decls string) string {
	var b strings.Builder
	b.WriteString("<style>.")
	b.WriteString(classText)
	b.WriteString(" { ")
	b.WriteString(splice(decls, "font-size: 1.5rem; background: #2d2d44; padding: 20px; border-radius: 8px;"))
	b.WriteString(" }</style>\n")
	b.WriteString(`<div class="` + classText + `">` + "\n")
	b.WriteString("    The quick brown fox jumps over the lazy dog.<br>\n")
	b.WriteString("    <strong>1234567890</strong>\n")
	b.WriteString("</div>")
	return b.String()
}

func flexboxScene(decls string) string {
	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString("    ." + classFlexBox + " { " + splice(decls, "min-height: 150px; background: #2d2d44; border: 2px dashed #6c63ff; padding: 10px;") + " }\n")
	b.WriteString("    ." + classFlexItem + " { width: 50px; height: 50px; background: #ff6b6b; margin: 5px; display: flex; align-items: center; justify-content: center; font-weight: bold; border: 1px solid white; }\n")
	b.WriteString("    ." + classFlexItem + ":nth-child(2) { background: #4ecdc4; height: 70px; }\n")
	b.WriteString("    ." + classFlexItem + ":nth-child(3) { background: #ffe66d; }\n")
	b.WriteString("</style>\n")
	b.WriteString(`<div class="` + classFlexBox + `">` + "\n")
	for _, n := range []string{"1", "2", "3"} {
		b.WriteString(`    <div class="` + classFlexItem + `">` + n + "</div>\n")
	}
	b.WriteString("</div>\n")
	b.WriteString(`<p style="font-size:0.8rem; color:#aaa; margin-top:5px;">* Dashed Box is the Parent Container</p>`)
	return b.String()
}

func gridChildScene(decls string) string {
	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString("    ." + classGridBox + " { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; background: #2d2d44; padding: 10px; }\n")
	b.WriteString("    ." + classGridItem + " { background: #4ecdc4; padding: 20px; text-align: center; border: 1px solid white; opacity: 0.5; }\n")
	b.WriteString("    ." + classGridFocus + " { " + splice(decls, "background: #ff6b6b; opacity: 1; font-weight: bold;") + " }\n")
	b.WriteString("</style>\n")
	b.WriteString(`<div class="` + classGridBox + `">` + "\n")
	b.WriteString(`    <div class="` + classGridItem + `">1</div>` + "\n")
	b.WriteString(`    <div class="` + classGridItem + " " + classGridFocus + `">Target</div>` + "\n")
	b.WriteString(`    <div class="` + classGridItem + `">3</div>` + "\n")
	b.WriteString(`    <div class="` + classGridItem + `">4</div>` + "\n")
	b.WriteString("</div>")
	return b.String()
}

func gridParentScene(decls string) string {
	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString("    ." + classGridBox + " { " + splice(decls, "background: #2d2d44; border: 2px dashed #6c63ff; padding: 10px; min-height: 150px;") + " }\n")
	b.WriteString("    ." + classGridItem + " { background: #ff6b6b; padding: 15px; border: 1px solid white; text-align: center; }\n")
	b.WriteString("    ." + classGridItem + ":nth-child(even) { background: #4ecdc4; }\n")
	b.WriteString("</style>\n")
	b.WriteString(`<div class="` + classGridBox + `">` + "\n")
	for _, n := range []string{"1", "2", "3", "4", "5", "6"} {
		b.WriteString(`    <div class="` + classGridItem + `">` + n + "</div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func positioningScene(decls string) string {
	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString("    ." + classPosBox + " { position: relative; height: 150px; background: #2d2d44; border: 2px solid #fff; }\n")
	b.WriteString("    ." + classPosItem + " { " + splice(decls, "width: 60px; height: 60px; background: #ff6b6b; display: flex; align-items: center; justify-content: center; border: 1px solid white;") + " }\n")
	b.WriteString("</style>\n")
	b.WriteString(`<div class="` + classPosBox + `">` + "\n")
	b.WriteString(`    <div class="` + classPosItem + `">Box</div>` + "\n")
	b.WriteString(`    <div style="position:absolute; bottom:5px; right:5px; font-size:0.8rem; opacity:0.5;">Parent (Relative)</div>` + "\n")
	b.WriteString("</div>")
	return b.String()
}

func animationScene(decls string) string {
	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString("    ." + classAnimBox + " { " + splice(decls, "width: 80px; height: 80px; background: linear-gradient(135deg, #6c63ff, #ff6b6b); margin: 40px auto; display: flex; align-items: center; justify-content: center; box-shadow: 0 5px 15px rgba(0,0,0,0.3);") + " }\n")
	b.WriteString("    ." + classAnimBox + ":hover { transform: scale(1.2) rotate(10deg); filter: brightness(1.2); }\n")
	b.WriteString("</style>\n")
	b.WriteString(`<div class="` + classAnimBox + `">Hover Me</div>`)
	return b.String()
}

// defaultBoxScene renders a lone box. Visibility defaults come first so the
// declarations under test override them; a default is left out entirely when
// the property name says the declarations are about that aspect.
func defaultBoxScene(property, decls string) string {
	defaults := make([]string, 0, 4)
	if !strings.Contains(property, "background") {
		defaults = append(defaults, "background-color: "+AccentColor+";")
	}
	if !strings.Contains(property, "width") {
		defaults = append(defaults, "width: 100px;")
	}
	if !strings.Contains(property, "height") {
		defaults = append(defaults, "height: 100px;")
	}
	if !strings.Contains(property, "border") {
		defaults = append(defaults, "border: 1px solid white;")
	}

	// Defaults come after the declarations so they win the cascade.
	parts := make([]string, 0, 6)
	if decls != "" {
		parts = append(parts, decls)
	}
	parts = append(parts, defaults...)
	parts = append(parts, "display: flex; align-items: center; justify-content: center;")
	body := strings.Join(parts, " ")

	var b strings.Builder
	b.WriteString("<style>\n")
	b.WriteString("    ." + classDefault + " { " + body + " }\n")
	b.WriteString("</style>\n")
	b.WriteString(`<div class="` + classDefault + `">Box</div>`)
	return b.String()
}
