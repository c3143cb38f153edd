package sasl

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrSourceNotFound is returned by resolvers when no search location has
// the requested translation unit.
var ErrSourceNotFound = errors.New("source not found")

// Resolver locates the source text of a translation unit by name. This is
// how the compiler loads the shader files it is asked to compile.
type Resolver interface {
	FindSourceByName(name string) (io.ReadCloser, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(string) (io.ReadCloser, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) FindSourceByName(name string) (io.ReadCloser, error) {
	return f(name)
}

// CompositeResolver tries each resolver in turn, returning the first hit.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (c CompositeResolver) FindSourceByName(name string) (io.ReadCloser, error) {
	if len(c) == 0 {
		return nil, ErrSourceNotFound
	}
	var firstErr error
	for _, res := range c {
		r, err := res.FindSourceByName(name)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// SourceResolver resolves unit names against a list of search paths on a
// file system. With no search paths, names are used as paths directly.
type SourceResolver struct {
	// The file system searched. Defaults to the OS file system rooted at
	// the current working directory.
	FS fs.FS
	// Directories tried in order when resolving a relative unit name.
	SearchPaths []string
}

var _ Resolver = (*SourceResolver)(nil)

func (r *SourceResolver) fsys() fs.FS {
	if r.FS != nil {
		return r.FS
	}
	return os.DirFS(".")
}

func (r *SourceResolver) FindSourceByName(name string) (io.ReadCloser, error) {
	if len(r.SearchPaths) == 0 {
		return r.open(name)
	}
	var e error
	for _, dir := range r.SearchPaths {
		rc, err := r.open(filepath.ToSlash(filepath.Join(dir, name)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return nil, err
		}
		return rc, nil
	}
	if e == nil {
		e = ErrSourceNotFound
	}
	return nil, e
}

func (r *SourceResolver) open(path string) (io.ReadCloser, error) {
	return r.fsys().Open(path)
}

// ExpandPatterns expands doublestar glob patterns (e.g. "shaders/**/*.ss")
// against the resolver's file system and search paths, returning the
// matching unit names sorted and de-duplicated. Names without glob
// metacharacters pass through unchanged.
func (r *SourceResolver) ExpandPatterns(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	roots := r.SearchPaths
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, pat := range patterns {
		if !hasGlobMeta(pat) {
			add(pat)
			continue
		}
		for _, dir := range roots {
			sub, err := fs.Sub(r.fsys(), filepath.ToSlash(dir))
			if err != nil {
				return nil, err
			}
			matches, err := doublestar.Glob(sub, pat)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func hasGlobMeta(pat string) bool {
	for _, r := range pat {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
