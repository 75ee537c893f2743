// Package cli wires the cobra command tree: the root command scaffolds a
// new project, "add" retrofits extensions, and "config"/"version" manage
// settings and build info.
package cli
