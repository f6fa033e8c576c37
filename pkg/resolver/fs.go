package resolver

import "os"

// FS is the filesystem the resolver queries. It is read-only: resolution
// never writes. ListSubdirs may fail; the resolver treats a failed listing
// as an empty one.
type FS interface {
	// FileExists reports whether path is an existing regular file.
	FileExists(path string) bool
	// DirExists reports whether path is an existing directory.
	DirExists(path string) bool
	// ListSubdirs returns the names of the immediate subdirectories of path,
	// in the host's listing order.
	ListSubdirs(path string) ([]string, error)
}

// OSFS implements FS against the host filesystem.
type OSFS struct{}

func (OSFS) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OSFS) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFS) ListSubdirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
