// Package source loads partner records for a planning run, either from the
// remote dataset API or from a local JSON/YAML file.
package source
