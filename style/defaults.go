package style

// DisplayForTag returns the user-agent default `display` value for an
// HTML tag name, switching on a bare tag string since wisp's arena
// nodes don't carry golang.org/x/net/html nodes directly.
func DisplayForTag(tag string) string {
	switch tag {
	case "head", "script", "style", "title":
		return "none"
	case "html", "body", "div", "p", "ul", "ol", "li", "section",
		"article", "aside", "h1", "h2", "h3", "h4", "h5", "h6",
		"table", "tr", "td", "th":
		return "block"
	case "span", "a", "b", "i", "strong", "em":
		return "inline"
	}
	tracer().Infof("unknown element <%s>, defaulting display to block", tag)
	return "block"
}

// Defaults returns the user-agent default PropertyMap: the small,
// fixed set of values every styled node starts from before the cascade
// applies any author rules, narrowed to the property set this module's
// cascade actually understands.
func Defaults(tag string) *PropertyMap {
	pm := NewPropertyMap()
	pm.Set("display", Value{Kind: KindKeyword, Keyword: DisplayForTag(tag)})
	pm.Set("visibility", Value{Kind: KindKeyword, Keyword: "visible"})
	pm.Set("color", Value{Kind: KindColor, Color: namedColors["black"]})
	pm.Set("background-color", Value{Kind: KindKeyword, Keyword: "transparent"})
	pm.Set("font-size", Value{Kind: KindLengthPx, Num: 16})
	pm.Set("font-weight", Value{Kind: KindKeyword, Keyword: "normal"})
	pm.Set("font-family", Value{Kind: KindKeyword, Keyword: "sans-serif"})
	pm.Set("line-height", Value{Kind: KindNumber, Num: 1.2})
	pm.Set("text-align", Value{Kind: KindKeyword, Keyword: "left"})
	pm.Set("margin-top", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("margin-right", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("margin-bottom", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("margin-left", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("padding-top", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("padding-right", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("padding-bottom", Value{Kind: KindLengthPx, Num: 0})
	pm.Set("padding-left", Value{Kind: KindLengthPx, Num: 0})
	return pm
}
