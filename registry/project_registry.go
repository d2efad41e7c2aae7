/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"go.uber.org/zap"

	"github.com/suparena/projectregistry/errors"
	"github.com/suparena/projectregistry/project"
)

// ProjectRegistry indexes a hierarchy of projects by path.
type ProjectRegistry[T project.Identifier] interface {
	Add(p T) error
	Remove(path string) (T, error)
	RemoveSubtree(path string) ([]T, error)

	AllProjects() []T
	RootProject() (T, bool)
	Project(path string) (T, bool)
	ProjectForDir(dir string) (T, bool, error)
	AllProjectsOf(path string) []T
	SubProjects(path string) []T

	Len() int
	Contains(path string) bool
}

// DefaultProjectRegistry keeps four views of one set of projects consistent:
// the ordered set of all projects, a path index, and per-path sets of direct
// and transitive sub-projects. All returned slices are copies in path order.
type DefaultProjectRegistry[T project.Identifier] struct {
	mu                sync.RWMutex
	logger            *zap.Logger
	projects          *treeset.Set
	projectsByPath    map[string]T
	subProjectsByPath map[string]*treeset.Set
	allProjectsByPath map[string]*treeset.Set
}

var _ ProjectRegistry[project.Identifier] = (*DefaultProjectRegistry[project.Identifier])(nil)

// New creates an empty registry.
func New[T project.Identifier](opts ...Option) *DefaultProjectRegistry[T] {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &DefaultProjectRegistry[T]{
		logger:            options.Logger,
		projects:          newProjectSet(),
		projectsByPath:    make(map[string]T),
		subProjectsByPath: make(map[string]*treeset.Set),
		allProjectsByPath: make(map[string]*treeset.Set),
	}
}

func byPath(a, b interface{}) int {
	return project.Compare(a.(project.Identifier), b.(project.Identifier))
}

func newProjectSet(items ...interface{}) *treeset.Set {
	return treeset.NewWith(byPath, items...)
}

// Add registers p and records it under every registered ancestor. The whole
// parent chain must already be registered; nothing is modified when Add fails.
func (r *DefaultProjectRegistry[T]) Add(p T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := p.Path()
	if path == "" {
		r.logger.Warn("rejected project with empty path")
		return errors.NewValidationError("path", "project path must not be empty")
	}
	if _, exists := r.projectsByPath[path]; exists {
		r.logger.Warn("rejected duplicate project", zap.String("path", path))
		return errors.NewAlreadyExistsError("project", path)
	}
	if err := r.checkAncestors(p); err != nil {
		r.logger.Warn("rejected project", zap.String("path", path), zap.Error(err))
		return err
	}

	r.projects.Add(p)
	r.projectsByPath[path] = p
	r.subProjectsByPath[path] = newProjectSet()
	r.allProjectsByPath[path] = newProjectSet(p)

	ancestors := 0
	for a := p.Parent(); a != nil; a = a.Parent() {
		if ancestors == 0 {
			r.subProjectsByPath[a.Path()].Add(p)
		}
		r.allProjectsByPath[a.Path()].Add(p)
		ancestors++
	}

	r.logger.Debug("project added", zap.String("path", path), zap.Int("ancestors", ancestors))
	return nil
}

// checkAncestors verifies that every ancestor of p is registered. The walk is
// bounded by the registry size so a cyclic parent chain is reported instead of
// looping forever.
func (r *DefaultProjectRegistry[T]) checkAncestors(p T) error {
	steps := 0
	for a := p.Parent(); a != nil; a = a.Parent() {
		if _, ok := r.projectsByPath[a.Path()]; !ok {
			return errors.NewUnknownAncestorError(p.Path(), a.Path())
		}
		steps++
		if steps > len(r.projectsByPath) {
			return errors.NewValidationError("parent", fmt.Sprintf("parent chain of project %q contains a cycle", p.Path()))
		}
	}
	return nil
}

// Remove unregisters the project at path and retracts it from every ancestor.
// A project with registered sub-projects cannot be removed; use RemoveSubtree.
func (r *DefaultProjectRegistry[T]) Remove(path string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	p, ok := r.projectsByPath[path]
	if !ok {
		return zero, errors.NewNotFoundError("project", path)
	}
	if children := r.subProjectsByPath[path]; !children.Empty() {
		childPaths := project.Paths(values[T](children))
		r.logger.Warn("refused to remove project with sub-projects",
			zap.String("path", path), zap.Strings("children", childPaths))
		return zero, errors.NewHasChildrenError(path, childPaths)
	}

	r.detach(p)
	r.logger.Debug("project removed", zap.String("path", path))
	return p, nil
}

// RemoveSubtree removes the project at path together with all of its
// descendants, deepest first. The removed projects are returned in path order.
func (r *DefaultProjectRegistry[T]) RemoveSubtree(path string) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, ok := r.allProjectsByPath[path]
	if !ok {
		return nil, errors.NewNotFoundError("project", path)
	}

	removed := values[T](all)
	depths := make(map[string]int, len(removed))
	for _, p := range removed {
		depths[p.Path()] = depth(p)
	}
	order := make([]T, len(removed))
	copy(order, removed)
	sort.SliceStable(order, func(i, j int) bool {
		return depths[order[i].Path()] > depths[order[j].Path()]
	})

	for _, p := range order {
		r.detach(p)
	}

	r.logger.Debug("project subtree removed", zap.String("path", path), zap.Int("count", len(removed)))
	return removed, nil
}

// detach drops p from every index. Ancestor indexes must exist; a missing one
// means the parent chain changed after registration.
func (r *DefaultProjectRegistry[T]) detach(p T) {
	path := p.Path()
	delete(r.projectsByPath, path)
	r.projects.Remove(p)
	delete(r.subProjectsByPath, path)
	delete(r.allProjectsByPath, path)

	for a := p.Parent(); a != nil; a = a.Parent() {
		subs, okSub := r.subProjectsByPath[a.Path()]
		all, okAll := r.allProjectsByPath[a.Path()]
		if !okSub || !okAll {
			panic(fmt.Sprintf("project registry: ancestor %q of %q is not indexed", a.Path(), path))
		}
		subs.Remove(p)
		all.Remove(p)
	}
}

// AllProjects returns every registered project in path order.
func (r *DefaultProjectRegistry[T]) AllProjects() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return values[T](r.projects)
}

// RootProject returns the project registered at the root path, if any.
func (r *DefaultProjectRegistry[T]) RootProject() (T, bool) {
	return r.Project(project.PathSeparator)
}

// Project returns the project registered at path, if any.
func (r *DefaultProjectRegistry[T]) Project(path string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projectsByPath[path]
	return p, ok
}

// ProjectForDir returns the single project whose directory equals dir. When
// several projects share dir an AmbiguousDirectoryError listing all of them
// is returned.
func (r *DefaultProjectRegistry[T]) ProjectForDir(dir string) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	matches := matchDir[T](r.projects, dir)
	switch len(matches) {
	case 0:
		return zero, false, nil
	case 1:
		return matches[0], true, nil
	default:
		return zero, false, errors.NewAmbiguousDirectoryError(dir, project.Paths(matches))
	}
}

// AllProjectsOf returns the project at path and all of its descendants.
// It returns an empty slice for an unregistered path.
func (r *DefaultProjectRegistry[T]) AllProjectsOf(path string) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.allProjectsByPath[path]
	if !ok {
		return []T{}
	}
	return values[T](set)
}

// SubProjects returns the direct children of path, or an empty slice for an
// unregistered path.
func (r *DefaultProjectRegistry[T]) SubProjects(path string) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.subProjectsByPath[path]
	if !ok {
		return []T{}
	}
	return values[T](set)
}

// Len returns the number of registered projects.
func (r *DefaultProjectRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projectsByPath)
}

// Contains reports whether path is registered.
func (r *DefaultProjectRegistry[T]) Contains(path string) bool {
	_, ok := r.Project(path)
	return ok
}

func values[T project.Identifier](set *treeset.Set) []T {
	items := set.Values()
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.(T))
	}
	return out
}

func matchDir[T project.Identifier](set *treeset.Set, dir string) []T {
	var matches []T
	it := set.Iterator()
	for it.Next() {
		p := it.Value().(T)
		if p.ProjectDir() == dir {
			matches = append(matches, p)
		}
	}
	return matches
}

func depth(p project.Identifier) int {
	d := 0
	for a := p.Parent(); a != nil; a = a.Parent() {
		d++
	}
	return d
}
