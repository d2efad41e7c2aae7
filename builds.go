/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package projectregistry

import (
	"sort"
	"sync"

	"github.com/suparena/projectregistry/errors"
	"github.com/suparena/projectregistry/project"
	"github.com/suparena/projectregistry/registry"
)

// Builds manages the project registries of several builds keyed by build name
type Builds[T project.Identifier] struct {
	mu         sync.RWMutex
	registries map[string]registry.ProjectRegistry[T]
}

// NewBuilds creates an empty Builds
func NewBuilds[T project.Identifier]() *Builds[T] {
	return &Builds[T]{
		registries: make(map[string]registry.ProjectRegistry[T]),
	}
}

// Register adds a registry under the given build name
func (b *Builds[T]) Register(name string, reg registry.ProjectRegistry[T]) error {
	if name == "" {
		return errors.NewValidationError("name", "build name must not be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.registries[name]; exists {
		return errors.NewAlreadyExistsError("build", name)
	}

	b.registries[name] = reg
	return nil
}

// Get retrieves a registry by build name
func (b *Builds[T]) Get(name string) (registry.ProjectRegistry[T], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	reg, exists := b.registries[name]
	if !exists {
		return nil, errors.NewNotFoundError("build", name)
	}

	return reg, nil
}

// Remove deletes a registry by build name
func (b *Builds[T]) Remove(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.registries[name]; !exists {
		return errors.NewNotFoundError("build", name)
	}

	delete(b.registries, name)
	return nil
}

// Names returns all registered build names in sorted order
func (b *Builds[T]) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.registries))
	for k := range b.registries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ProjectForDir looks dir up in every build. A match is only returned when it
// is unique across all builds; otherwise the error lists every candidate as
// "<build> <path>", ordered by build name and then path.
func (b *Builds[T]) ProjectForDir(dir string) (string, T, bool, error) {
	var zero T
	var (
		matchBuild string
		match      T
		found      bool
		all        []string
	)

	for _, name := range b.Names() {
		reg, err := b.Get(name)
		if err != nil {
			// Removed concurrently.
			continue
		}

		p, ok, err := reg.ProjectForDir(dir)
		if errors.IsAmbiguousDirectory(err) {
			for _, q := range reg.AllProjects() {
				if q.ProjectDir() == dir {
					all = append(all, qualified(name, q.Path()))
				}
			}
			continue
		}
		if err != nil {
			return "", zero, false, err
		}
		if ok {
			all = append(all, qualified(name, p.Path()))
			matchBuild, match, found = name, p, true
		}
	}

	if len(all) > 1 {
		return "", zero, false, errors.NewAmbiguousDirectoryError(dir, all)
	}
	if !found {
		return "", zero, false, nil
	}
	return matchBuild, match, true, nil
}

func qualified(build, path string) string {
	return build + " " + path
}
