package pkginfo

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/exp/slices"
)

// skipDir reports whether a directory is ignored by the go tool, and so by DiscoverPackages.
func skipDir(name string) bool {
	return name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

func isSource(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

// DiscoverPackages walks fsys and returns, in sorted order, every directory that holds at least one
// non-test Go source file.  The root itself is reported as ".".  Directories the go tool ignores
// (testdata, and names starting with "_" or ".") are skipped along with everything beneath them.
func DiscoverPackages(fsys fs.FS) ([]string, error) {
	found := make(map[string]bool)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err

		case d.IsDir():
			if p != "." && skipDir(d.Name()) {
				return fs.SkipDir
			}

		case isSource(d.Name()):
			found[path.Dir(p)] = true
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	packages := make([]string, 0, len(found))
	for p := range found {
		packages = append(packages, p)
	}

	slices.Sort(packages)
	return packages, nil
}

// ListData returns the sorted paths of every regular file under dir.  A missing dir yields no files.
func ListData(fsys fs.FS, dir string) ([]string, error) {
	if _, err := fs.Stat(fsys, dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var files []string
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			files = append(files, p)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
