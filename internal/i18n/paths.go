package i18n

import "strings"

// SplitPath separates a locale prefix from the rest of the path. Unprefixed paths
// belong to the default locale. The rest always starts with "/".
func SplitPath(path string) (Locale, string) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	if l, ok := Lookup(segment); ok {
		return l, "/" + rest
	}
	if path == "" {
		return Default, "/"
	}
	return Default, path
}

// LocalizedPath prefixes path with the locale unless it is the default one.
func LocalizedPath(l Locale, path string) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	if l.IsDefault() {
		return path
	}
	if path == "/" {
		return "/" + l.Code
	}
	return "/" + l.Code + path
}

// SwitchPath rebuilds the current URL for the language switcher: the prefix of from
// is replaced with the prefix of to, keeping query and fragment.
func SwitchPath(current string, from, to Locale) string {
	path, suffix := current, ""
	if i := strings.IndexAny(current, "?#"); i >= 0 {
		path, suffix = current[:i], current[i:]
	}

	if !from.IsDefault() {
		prefix := "/" + from.Code
		if path == prefix {
			path = "/"
		} else if strings.HasPrefix(path, prefix+"/") {
			path = strings.TrimPrefix(path, prefix)
		}
	}
	return LocalizedPath(to, path) + suffix
}
