package resolver

import "path/filepath"

// Resolver resolves route strings against a project tree. It holds no cache
// and no mutable state; concurrent resolutions are independent.
type Resolver struct {
	fs FS
}

// New creates a Resolver over the given filesystem. A nil fs uses the host
// filesystem.
func New(fs FS) *Resolver {
	if fs == nil {
		fs = OSFS{}
	}
	return &Resolver{fs: fs}
}

// ResolveDirect maps a route to its definition file by joining the route's
// segments directly onto the app directory. The returned path is a pure
// function of the inputs; only the Exists flag and the .ts/.tsx choice
// depend on filesystem state. When no candidate exists, the .ts candidate is
// returned with Exists false so callers can offer a deterministic "create
// this file" target. The result is never nil under the current rules.
func (r *Resolver) ResolveDirect(route, projectRoot string, cfg Config) *Result {
	segments := ParseRoute(route)
	parts := append([]string{projectRoot, cfg.AppDir}, segments...)
	dir := filepath.Join(parts...)

	candidates := definitionCandidates(dir, cfg.base())
	for _, candidate := range candidates {
		if r.fs.FileExists(candidate) {
			return &Result{FilePath: candidate, Exists: true}
		}
	}
	return &Result{FilePath: candidates[0], Exists: false}
}

// ResolveWithGroups resolves a route while descending through route group
// directories, which wrap files on disk without appearing in the URL. It is
// the fallback for routes whose direct mapping does not exist. Groups may be
// interposed anywhere along the path, at any depth, and may nest. The first
// match found in listing order wins. The boolean reports whether a
// definition file was found.
func (r *Resolver) ResolveWithGroups(route, projectRoot string, cfg Config) (string, bool) {
	start := filepath.Join(projectRoot, cfg.AppDir)
	return r.search(start, ParseRoute(route), cfg.base())
}

// search is a depth-first backtracking descent. Each recursive call either
// consumes one segment (literal child) or descends one group directory with
// the segment list unconsumed, so the recursion is bounded by the tree depth.
func (r *Resolver) search(dir string, segments []string, base string) (string, bool) {
	if len(segments) == 0 {
		for _, candidate := range definitionCandidates(dir, base) {
			if r.fs.FileExists(candidate) {
				return candidate, true
			}
		}
		return "", false
	}

	head, rest := segments[0], segments[1:]

	literal := filepath.Join(dir, head)
	if r.fs.DirExists(literal) {
		if path, ok := r.search(literal, rest, base); ok {
			return path, true
		}
	}

	// Group directories do not consume a URL segment.
	for _, name := range r.groupDirs(dir) {
		if path, ok := r.search(filepath.Join(dir, name), segments, base); ok {
			return path, true
		}
	}

	return "", false
}

// groupDirs lists the group subdirectories of dir. A failed listing
// (missing directory, permission error) is an empty listing, never a fatal
// condition for the resolution attempt.
func (r *Resolver) groupDirs(dir string) []string {
	names, err := r.fs.ListSubdirs(dir)
	if err != nil {
		return nil
	}
	var groups []string
	for _, name := range names {
		if IsGroupDir(name) {
			groups = append(groups, name)
		}
	}
	return groups
}

// definitionCandidates returns the candidate definition files inside dir,
// .ts before .tsx.
func definitionCandidates(dir, base string) []string {
	return []string{
		filepath.Join(dir, base+".ts"),
		filepath.Join(dir, base+".tsx"),
	}
}
