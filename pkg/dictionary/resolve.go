package dictionary

import (
	"os"
	"path/filepath"
)

// DefaultSearchDirs are probed, in order, when the explicit pair is missing.
// They cover running from the repository root, from a subdirectory, and
// from a build output directory three levels down.
var DefaultSearchDirs = []string{
	"../public/dictionaries",
	"public/dictionaries",
	"../../../public/dictionaries",
	"dictionaries",
}

// Resolve returns the first complete .aff/.dic pair.
//
// The explicit pair is tried first, then <dir>/<lang>.aff and
// <dir>/<lang>.dic for each search directory. Empty lang means
// DefaultLanguage and nil searchDirs means DefaultSearchDirs.
func Resolve(aff, dic, lang string, searchDirs []string) (string, string, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	if searchDirs == nil {
		searchDirs = DefaultSearchDirs
	}

	candidates := make([][2]string, 0, len(searchDirs)+1)
	if aff != "" && dic != "" {
		candidates = append(candidates, [2]string{aff, dic})
	}
	for _, dir := range searchDirs {
		candidates = append(candidates, [2]string{
			filepath.Join(dir, lang+".aff"),
			filepath.Join(dir, lang+".dic"),
		})
	}

	for _, c := range candidates {
		if isFile(c[0]) && isFile(c[1]) {
			return c[0], c[1], nil
		}
	}
	return "", "", ErrDictionaryNotFound
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
