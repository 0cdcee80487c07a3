// Package model defines the data structures for converted coverage reports.
package model

// Path represents a file system path.
type Path string

// Report identifies a coverage report file handed to the converter.
type Report struct {
	Path    Path   `yaml:"path" json:"path"`
	Version string `yaml:"version" json:"version"` // producing tool version, empty when unknown
}
