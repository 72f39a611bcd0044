//go:build property

package preview

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPreviewProperties checks the classifier against generated property names.
func TestPreviewProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	names := gen.RegexMatch(`^[a-z]{0,8}(-[a-z]{1,8}){0,2}$`)
	decls := gen.RegexMatch(`^[a-z-]{1,12}: [a-z0-9#%]{1,8};$`)

	properties.Property("render is deterministic", prop.ForAll(
		func(name, body string) bool {
			css := "div { " + body + " }"
			return Render(name, css) == Render(name, css)
		},
		names, decls,
	))

	properties.Property("declarations survive extraction", prop.ForAll(
		func(body string) bool {
			return ExtractDeclarations("div { "+body+" }") == body &&
				ExtractDeclarations(body) == body
		},
		decls,
	))

	properties.Property("declarations are spliced into the markup", prop.ForAll(
		func(name, body string) bool {
			return strings.Contains(Render(name, "p { "+body+" }"), body)
		},
		names, decls,
	))

	properties.Property("default box is always sized and coloured", prop.ForAll(
		func(name string) bool {
			if Classify(name) != SceneDefaultBox {
				return true
			}
			out := Render(name, "")
			return (strings.Contains(name, "background") || strings.Contains(out, "background-color: "+AccentColor)) &&
				(strings.Contains(name, "width") || strings.Contains(out, "width: 100px;")) &&
				(strings.Contains(name, "height") || strings.Contains(out, "height: 100px;"))
		},
		names,
	))

	properties.Property("typography keywords take priority", prop.ForAll(
		func(prefix, kw string) bool {
			return Classify(prefix+"color-"+kw) == SceneTypography
		},
		gen.AlphaString(),
		gen.OneConstOf("flex", "grid", "top", "scale", "area"),
	))

	properties.Property("flexbox beats grid, positioning and animation", prop.ForAll(
		func(kw, other string) bool {
			return Classify(kw+"-"+other) == SceneFlexbox
		},
		gen.OneConstOf("flex", "justify", "align", "gap", "wrap"),
		gen.OneConstOf("grid", "place", "position", "bottom", "rotate"),
	))

	properties.TestingRun(t)
}
