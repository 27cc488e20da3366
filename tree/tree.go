// Package tree renders a solution map as human-readable text.
package tree

import (
	"fmt"
	"io"
	"strings"

	"slnmap/model"
)

// Colors for terminal output
type Colors struct {
	Reset  string
	Red    string
	Green  string
	Yellow string
	Cyan   string
	Dim    string
	Bold   string
}

// DefaultColors returns ANSI color codes
func DefaultColors() Colors {
	return Colors{
		Reset:  "\033[0m",
		Red:    "\033[31m",
		Green:  "\033[32m",
		Yellow: "\033[33m",
		Cyan:   "\033[36m",
		Dim:    "\033[2m",
		Bold:   "\033[1m",
	}
}

// PlainColors returns empty strings (no colors)
func PlainColors() Colors {
	return Colors{}
}

// Render outputs the solution map to the given writer.
func Render(w io.Writer, set *model.SolutionSet, c Colors) {
	solutions, projects, files := set.Counts()
	fmt.Fprintf(w, "%s%sSolution Map%s (%d solutions, %d projects, %d code files)\n",
		c.Bold, c.Cyan, c.Reset, solutions, projects, files)
	fmt.Fprintln(w, strings.Repeat("─", 50))

	for _, sln := range set.Solutions {
		fmt.Fprintf(w, "\n%s%s%s %s(%s)%s\n", c.Green, sln.SolutionName, c.Reset, c.Dim, sln.FullPath, c.Reset)

		if len(sln.Projects) == 0 {
			fmt.Fprintf(w, "  %s(no projects)%s\n", c.Dim, c.Reset)
			continue
		}
		for i, p := range sln.Projects {
			renderProject(w, p, "", i == len(sln.Projects)-1, c)
		}
	}

	fmt.Fprintln(w)
}

// renderProject prints one project line plus its resolved references,
// using box-drawing connectors to show nesting.
func renderProject(w io.Writer, p *model.Project, prefix string, last bool, c Colors) {
	connector := "├─"
	if last {
		connector = "└─"
	}
	fmt.Fprintf(w, "%s%s %s %s(%s)%s\n", prefix, connector, p.Name, c.Dim, fileCountLabel(len(p.CodeFiles)), c.Reset)

	childPrefix := prefix + "│  "
	if last {
		childPrefix = prefix + "   "
	}
	for i, child := range p.ChildProjects {
		renderProject(w, child, childPrefix, i == len(p.ChildProjects)-1, c)
	}
}

func fileCountLabel(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
