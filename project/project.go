/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package project

import "strings"

// PathSeparator separates path segments and is also the path of the root project.
const PathSeparator = ":"

// Identifier is the contract a project must satisfy to be tracked by a registry.
type Identifier interface {
	// Path is the unique hierarchical identifier, e.g. ":a:b".
	Path() string
	// Parent returns the enclosing project, or an untyped nil for the root.
	Parent() Identifier
	// ProjectDir is the filesystem directory of the project. It need not be unique.
	ProjectDir() string
}

// Compare orders projects lexicographically by path.
func Compare(a, b Identifier) int {
	return strings.Compare(a.Path(), b.Path())
}

// Paths returns the paths of the given projects, preserving order.
func Paths[T Identifier](projects []T) []string {
	paths := make([]string, 0, len(projects))
	for _, p := range projects {
		paths = append(paths, p.Path())
	}
	return paths
}

// ChildPath returns the path of a child named name under parentPath.
func ChildPath(parentPath, name string) string {
	if parentPath == PathSeparator {
		return PathSeparator + name
	}
	return parentPath + PathSeparator + name
}

// Descriptor is the default Identifier implementation.
type Descriptor struct {
	name   string
	path   string
	dir    string
	parent *Descriptor
}

// NewRoot creates the root project descriptor.
func NewRoot(name, dir string) *Descriptor {
	return &Descriptor{
		name: name,
		path: PathSeparator,
		dir:  dir,
	}
}

// NewChild creates a descriptor nested under parent.
func NewChild(parent *Descriptor, name, dir string) *Descriptor {
	return &Descriptor{
		name:   name,
		path:   ChildPath(parent.path, name),
		dir:    dir,
		parent: parent,
	}
}

func (d *Descriptor) Name() string { return d.name }

func (d *Descriptor) Path() string { return d.path }

func (d *Descriptor) ProjectDir() string { return d.dir }

// Parent returns the enclosing descriptor. A nil parent is returned as an untyped nil
// so that callers can compare the result against nil.
func (d *Descriptor) Parent() Identifier {
	if d.parent == nil {
		return nil
	}
	return d.parent
}

// Depth is the number of ancestors; the root has depth 0.
func (d *Descriptor) Depth() int {
	depth := 0
	for p := d.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

func (d *Descriptor) String() string {
	return d.path
}
