//go:build windows

package fs

// IsHidden reports whether the entry carries the hidden attribute. Names
// starting with a dot count as hidden when the attributes cannot be read.
func IsHidden(fullPath string, name string) bool {
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return isDotName(name)
	}
	return attrs&fileAttributeHidden != 0
}
