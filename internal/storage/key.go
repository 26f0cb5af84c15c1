package storage

import "regexp"

var (
	unsafeDirChars  = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	dotRun          = regexp.MustCompile(`\.{2,}`)
)

// Sanitize builds the object key "directory/filename", replacing every
// character outside the allow-lists with a hyphen. The only "/" in the result
// is the separator. Empty segments are kept; callers validate presence.
func Sanitize(directory, filename string) string {
	dir := unsafeDirChars.ReplaceAllString(directory, "-")
	file := unsafeFileChars.ReplaceAllString(filename, "-")
	file = dotRun.ReplaceAllStringFunc(file, func(run string) string {
		b := make([]byte, len(run))
		for i := range b {
			b[i] = '-'
		}
		return string(b)
	})
	return dir + "/" + file
}
