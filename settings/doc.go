/*
Package settings reads a YAML description of a project tree and builds a
populated project registry from it.

Settings Format:

	rootProject:
	  name: demo
	  dir: .
	  children:
	    - name: api
	      dir: services/api
	    - name: web
	      children:
	        - name: assets

Child directories are relative to the parent project's directory and default
to the child's name; the root directory is relative to the directory holding
the settings file. Paths are derived from names: the tree above yields
":", ":api", ":web" and ":web:assets".

Build registers projects breadth first, so every parent is registered before
its children.
*/
package settings
