package convert

// UniqueBytes will remove duplicates preserving order of the input
func UniqueBytes(in []byte) (out []byte) {
	var seen [256]bool
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return
}

// UniqueStrings will remove duplicates preserving order of the input
func UniqueStrings(in []string) (out []string) {
	seen := make(map[string]interface{})
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return
}

// Printable renders b for display, escaping control and non ascii bytes
// so they survive a terminal or a table cell
func Printable(b []byte) string {
	const hex = "0123456789abcdef"
	ret := make([]byte, 0, len(b))
	for _, c := range b {
		switch {
		case c == '\\':
			ret = append(ret, '\\', '\\')
		case c >= 0x20 && c < 0x7F:
			ret = append(ret, c)
		case c == '\t':
			ret = append(ret, '\\', 't')
		case c == '\n':
			ret = append(ret, '\\', 'n')
		case c == '\r':
			ret = append(ret, '\\', 'r')
		default:
			ret = append(ret, '\\', 'x', hex[c>>4], hex[c&0xF])
		}
	}
	return string(ret)
}
