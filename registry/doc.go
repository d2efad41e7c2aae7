/*
Package registry tracks a hierarchy of projects keyed by path.

DefaultProjectRegistry keeps four views of the same set of projects:
  - every registered project, ordered by path
  - a direct path index
  - the direct sub-projects of each path
  - the project at each path together with all of its descendants

Projects are registered parent first:

	reg := registry.New[*project.Descriptor](registry.WithLogger(logger))

	root := project.NewRoot("demo", "/work/demo")
	api := project.NewChild(root, "api", "/work/demo/api")

	_ = reg.Add(root)
	_ = reg.Add(api)

	reg.SubProjects(":")   // [:api]
	reg.AllProjectsOf(":") // [: :api]

Removing a project that still has sub-projects fails with a HasChildrenError;
RemoveSubtree removes a project and everything below it.

Add and Remove hold a write lock for the duration of the update, so readers
never observe a partially applied mutation. Writers are expected to be
serialized by the caller.
*/
package registry
