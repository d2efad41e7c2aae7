/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/projectregistry/errors"
	"github.com/suparena/projectregistry/project"
	"github.com/suparena/projectregistry/registry"
)

// DefaultFile is the settings file name looked up when none is given.
const DefaultFile = "settings.yaml"

// Settings is the root of a settings document.
type Settings struct {
	RootProject *ProjectNode `yaml:"rootProject"`
}

// ProjectNode declares one project and its children.
type ProjectNode struct {
	// Name is the path segment of the project. It is ignored for the root.
	Name string `yaml:"name"`
	// Dir is relative to the parent's directory (the settings directory for
	// the root). It defaults to Name for children and "." for the root.
	Dir      string         `yaml:"dir,omitempty"`
	Children []*ProjectNode `yaml:"children,omitempty"`
}

// Parse decodes a settings document.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return &s, nil
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(data)
}

// Validate checks that the document describes a well-formed tree.
func (s *Settings) Validate() error {
	if s.RootProject == nil {
		return errors.NewValidationError("rootProject", "root project is required")
	}

	type item struct {
		node *ProjectNode
		path string
	}
	queue := []item{{node: s.RootProject, path: project.PathSeparator}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		seen := make(map[string]bool, len(cur.node.Children))
		for _, child := range cur.node.Children {
			if child == nil {
				return errors.NewValidationError("children", fmt.Sprintf("empty entry under %q", cur.path))
			}
			if child.Name == "" {
				return errors.NewValidationError("name", fmt.Sprintf("child of %q has no name", cur.path))
			}
			if strings.Contains(child.Name, project.PathSeparator) {
				return errors.NewValidationError("name", fmt.Sprintf("%q must not contain %q", child.Name, project.PathSeparator))
			}
			if seen[child.Name] {
				return errors.NewValidationError("name", fmt.Sprintf("duplicate child %q under %q", child.Name, cur.path))
			}
			seen[child.Name] = true
			queue = append(queue, item{node: child, path: project.ChildPath(cur.path, child.Name)})
		}
	}
	return nil
}

// Build validates s and registers its projects root first. Directories are
// resolved against baseDir.
func Build(s *Settings, baseDir string, opts ...registry.Option) (*registry.DefaultProjectRegistry[*project.Descriptor], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	reg := registry.New[*project.Descriptor](opts...)

	rootDir := s.RootProject.Dir
	if rootDir == "" {
		rootDir = "."
	}
	root := project.NewRoot(s.RootProject.Name, resolveDir(baseDir, rootDir))

	type item struct {
		node *ProjectNode
		desc *project.Descriptor
	}
	queue := []item{{node: s.RootProject, desc: root}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if err := reg.Add(cur.desc); err != nil {
			return nil, fmt.Errorf("registering %s: %w", cur.desc.Path(), err)
		}
		for _, child := range cur.node.Children {
			dir := child.Dir
			if dir == "" {
				dir = child.Name
			}
			desc := project.NewChild(cur.desc, child.Name, resolveDir(cur.desc.ProjectDir(), dir))
			queue = append(queue, item{node: child, desc: desc})
		}
	}
	return reg, nil
}

// LoadAndBuild loads the settings file and builds a registry with directories
// relative to the file's directory.
func LoadAndBuild(path string, opts ...registry.Option) (*registry.DefaultProjectRegistry[*project.Descriptor], error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(s, filepath.Dir(path), opts...)
}

func resolveDir(base, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(base, dir)
}
