// Package mapping navigates nested manifest objects with typed, composable steps.
//
// A Navigator addresses one node of an object graph. Navigators are built from a root
// with Descend (plain fields) and Entry (elements of keyed lists) and resolve lazily:
// every call to Data walks the chain again from the root. A navigator therefore never
// holds a pointer into a slice that a later Entry has grown.
//
// Missing intermediate values are reported as a *PathError wrapping ErrMissingField.
// Navigation never allocates structure that a template was expected to contain.
package mapping

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("field is not set")

// PathError reports the dotted path at which navigation failed
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Field is a single descent step from a value of type P to one of its fields of type C
type Field[P, C any] struct {
	name string
	get  func(*P) *C
}

// NewField declares a step to a field that is always present, e.g. an embedded struct
func NewField[P, C any](name string, get func(*P) *C) Field[P, C] {
	return Field[P, C]{name: name, get: get}
}

// NewRef declares a step through a pointer field. Descending through a nil pointer fails.
func NewRef[P, C any](name string, get func(*P) **C) Field[P, C] {
	return Field[P, C]{
		name: name,
		get: func(p *P) *C {
			return *get(p)
		},
	}
}

func (f Field[P, C]) Name() string {
	return f.name
}

type Navigator[T any] struct {
	path    string
	resolve func() (*T, error)
}

// Root starts navigation at data
func Root[T any](data *T) Navigator[T] {
	return Navigator[T]{
		resolve: func() (*T, error) {
			if data == nil {
				return nil, &PathError{Path: "<root>", Err: ErrMissingField}
			}
			return data, nil
		},
	}
}

// Descend returns a navigator addressing field f of the node addressed by n
func Descend[P, C any](n Navigator[P], f Field[P, C]) Navigator[C] {
	path := joinPath(n.path, f.name)
	return Navigator[C]{
		path: path,
		resolve: func() (*C, error) {
			parent, err := n.resolve()
			if err != nil {
				return nil, err
			}
			child := f.get(parent)
			if child == nil {
				return nil, &PathError{Path: path, Err: ErrMissingField}
			}
			return child, nil
		},
	}
}

// Data resolves the navigator and returns direct mutable access to the addressed node
func (n Navigator[T]) Data() (*T, error) {
	return n.resolve()
}

// Path returns the dotted path of the addressed node relative to the root
func (n Navigator[T]) Path() string {
	return n.path
}

func joinPath(parent string, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
