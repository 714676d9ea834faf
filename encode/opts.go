package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact renders without any whitespace.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
