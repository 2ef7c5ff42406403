package crap

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// WriteList writes one path per line in the caller's path style.
func WriteList(w io.Writer, r *Result) error {
	for _, p := range r.Paths() {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Node represents an entry in the match tree.
type Node struct {
	Name     string
	Path     string
	IsDir    bool
	Matched  bool
	Children []*Node
}

// buildTree constructs a hierarchy from the matches, creating the
// intermediate directories that lead to them.
func buildTree(r *Result) *Node {
	root := &Node{Name: r.Target.Display, Path: ".", IsDir: true}
	nodes := map[string]*Node{".": root}

	var ensure func(p string) *Node
	ensure = func(p string) *Node {
		if n, ok := nodes[p]; ok {
			return n
		}
		parent := ensure(path.Dir(p))
		n := &Node{Name: path.Base(p), Path: p, IsDir: true}
		parent.Children = append(parent.Children, n)
		nodes[p] = n
		return n
	}

	for _, e := range r.Entries {
		parent := ensure(path.Dir(e.Path))
		if n, ok := nodes[e.Path]; ok {
			n.Matched = true
			continue
		}
		n := &Node{Name: e.Name, Path: e.Path, IsDir: e.IsDir, Matched: true}
		parent.Children = append(parent.Children, n)
		if e.IsDir {
			nodes[e.Path] = n
		}
	}

	sortChildren(root)
	return root
}

// sortChildren recursively sorts the children of a node alphabetically.
func sortChildren(node *Node) {
	if !node.IsDir || len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortChildren(child)
	}
}

// WriteTree renders the matches as a tree rooted at the display path.
// Matched directories are highlighted when colorize is set.
func WriteTree(w io.Writer, r *Result, colorize bool) error {
	_, err := io.WriteString(w, printTree(buildTree(r), colorize))
	return err
}

// printTree generates the string representation of the tree.
func printTree(root *Node, colorize bool) string {
	var builder strings.Builder
	builder.WriteString(root.Name)
	builder.WriteString("\n")
	printNode(&builder, root.Children, "", colorize)
	return builder.String()
}

func printNode(builder *strings.Builder, children []*Node, prefix string, colorize bool) {
	dir := color.New(color.FgBlue, color.Bold)
	match := color.New(color.FgRed)
	if colorize {
		dir.EnableColor()
		match.EnableColor()
	} else {
		dir.DisableColor()
		match.DisableColor()
	}

	for i, node := range children {
		connector := "├── "
		newPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			newPrefix = prefix + "    "
		}

		builder.WriteString(prefix)
		builder.WriteString(connector)
		switch {
		case node.Matched:
			name := node.Name
			if node.IsDir {
				name += "/"
			}
			builder.WriteString(match.Sprint(name))
		case node.IsDir:
			builder.WriteString(dir.Sprint(node.Name))
		default:
			builder.WriteString(node.Name)
		}
		builder.WriteString("\n")

		if node.IsDir && len(node.Children) > 0 {
			printNode(builder, node.Children, newPrefix, colorize)
		}
	}
}
