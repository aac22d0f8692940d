package cssparser

// propertyTypes is the coarse classification recorded on declarations. It is
// a fixed lookup, not value inspection.
var propertyTypes = map[string]string{
	"color":            "color",
	"background-color": "color",
	"border-color":     "color",
	"outline-color":    "color",
	"fill":             "color",
	"stroke":           "color",

	"width":          "dimension",
	"height":         "dimension",
	"min-width":      "dimension",
	"min-height":     "dimension",
	"max-width":      "dimension",
	"max-height":     "dimension",
	"margin":         "dimension",
	"margin-top":     "dimension",
	"margin-right":   "dimension",
	"margin-bottom":  "dimension",
	"margin-left":    "dimension",
	"padding":        "dimension",
	"padding-top":    "dimension",
	"padding-right":  "dimension",
	"padding-bottom": "dimension",
	"padding-left":   "dimension",
	"top":            "dimension",
	"right":          "dimension",
	"bottom":         "dimension",
	"left":           "dimension",
	"font-size":      "dimension",
	"line-height":    "dimension",
	"letter-spacing": "dimension",
	"word-spacing":   "dimension",
	"border-width":   "dimension",
	"border-radius":  "dimension",
	"gap":            "dimension",

	"font-family":     "font",
	"font-weight":     "font",
	"font-style":      "font",
	"font-variant":    "font",
	"text-align":      "font",
	"text-decoration": "font",
	"text-transform":  "font",

	"display":         "layout",
	"position":        "layout",
	"float":           "layout",
	"clear":           "layout",
	"overflow":        "layout",
	"visibility":      "layout",
	"z-index":         "layout",
	"flex-direction":  "layout",
	"justify-content": "layout",
	"align-items":     "layout",

	"background":       "background",
	"background-image": "background",

	"transition": "animation",
	"animation":  "animation",
	"transform":  "animation",
}

// shorthandProperties is the fixed set flagged as shorthand declarations.
var shorthandProperties = map[string]struct{}{
	"margin":        {},
	"padding":       {},
	"border":        {},
	"border-width":  {},
	"border-style":  {},
	"border-color":  {},
	"border-radius": {},
	"background":    {},
	"font":          {},
	"list-style":    {},
	"outline":       {},
	"flex":          {},
	"grid":          {},
	"gap":           {},
	"transition":    {},
	"animation":     {},
	"overflow":      {},
}

func propertyType(prop string) string {
	if t, ok := propertyTypes[prop]; ok {
		return t
	}
	return "other"
}

func isShorthand(prop string) bool {
	_, ok := shorthandProperties[prop]
	return ok
}
