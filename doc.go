/*
Package projectregistry tracks hierarchies of build projects identified by
colon-separated paths such as ":app:core".

The library is organised in layers:
  - project: the identity contract (path, parent, directory) and a default Descriptor
  - registry: the ProjectRegistry keeping path, sub-project and descendant indexes consistent
  - settings: builds a registry from a YAML description of the project tree
  - errors: semantic error types

Key Features:
  - Deterministic path ordering for every query and error message
  - Direct and transitive sub-project queries
  - Directory lookups that report ambiguity instead of guessing
  - Explicit removal policy: leaves only, or whole subtrees
  - Builds: several registries managed side by side

Basic Usage:

	reg, err := settings.LoadAndBuild("settings.yaml")
	if err != nil {
	    return err
	}

	builds := projectregistry.NewBuilds[*project.Descriptor]()
	_ = builds.Register("main", reg)

	build, p, ok, err := builds.ProjectForDir("/work/demo/api")
*/
package projectregistry
