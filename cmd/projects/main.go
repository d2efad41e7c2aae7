package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/suparena/projectregistry"
	"github.com/suparena/projectregistry/project"
	"github.com/suparena/projectregistry/registry"
	"github.com/suparena/projectregistry/settings"
)

// settingsEnv names the environment variable holding the default settings file.
const settingsEnv = "PROJECTS_SETTINGS"

func main() {
	// A missing .env is fine; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("projects", flag.ContinueOnError)
	fset.SetOutput(stderr)

	defaultSettings := os.Getenv(settingsEnv)
	if defaultSettings == "" {
		defaultSettings = settings.DefaultFile
	}

	var (
		settingsFile = fset.String("settings", defaultSettings, "Settings file describing the project tree (env "+settingsEnv+")")
		pathFlag     = fset.String("path", "", "Print the sub-projects and all projects of this path")
		dirFlag      = fset.String("dir", "", "Resolve the project owning this directory")
		verbose      = fset.Bool("verbose", false, "Log registry events")
		versionFlag  = fset.Bool("version", false, "Show version information")
		vFlag        = fset.Bool("v", false, "Show version information (short)")
	)
	if err := fset.Parse(args); err != nil {
		return 2
	}

	if *versionFlag || *vFlag {
		info := projectregistry.GetVersionInfo()
		fmt.Fprintf(stdout, "projects version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return 0
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "creating logger: %v\n", err)
			return 1
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	reg, err := settings.LoadAndBuild(*settingsFile, registry.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	switch {
	case *dirFlag != "":
		p, ok, err := reg.ProjectForDir(*dirFlag)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Fprintf(stderr, "no project with directory %s\n", *dirFlag)
			return 1
		}
		fmt.Fprintln(stdout, p.Path())
	case *pathFlag != "":
		if !reg.Contains(*pathFlag) {
			fmt.Fprintf(stderr, "no project with path %s\n", *pathFlag)
			return 1
		}
		fmt.Fprintf(stdout, "sub-projects: %s\n", strings.Join(project.Paths(reg.SubProjects(*pathFlag)), " "))
		fmt.Fprintf(stdout, "all projects: %s\n", strings.Join(project.Paths(reg.AllProjectsOf(*pathFlag)), " "))
	default:
		printTree(stdout, reg)
	}
	return 0
}

// printTree writes one line per project, indented by depth, in path order.
func printTree(w io.Writer, reg *registry.DefaultProjectRegistry[*project.Descriptor]) {
	for _, p := range reg.AllProjects() {
		fmt.Fprintf(w, "%s%s (%s)\n", strings.Repeat("  ", p.Depth()), p.Path(), p.ProjectDir())
	}
}
