package annotation

// maxInheritDepth bounds base-chain walks so a malformed in-memory model
// cannot loop forever.
const maxInheritDepth = 64

// Target is an entity that carries annotations.
type Target interface {
	// Attached returns the annotations placed directly on the target.
	Attached() []Annotation

	// Inherited returns the target this one inherits annotations from (a
	// base type or an overridden action), or nil.
	Inherited() Target
}

// Reader looks up the annotations of a target.
type Reader interface {
	// Annotations returns the annotations of target. When inherit is true,
	// annotations from the inheritance chain follow the target's own, nearest
	// ancestor first.
	Annotations(target Target, inherit bool) []Annotation
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(target Target, inherit bool) []Annotation

// Annotations calls f.
func (f ReaderFunc) Annotations(target Target, inherit bool) []Annotation {
	return f(target, inherit)
}

// AttachedReader reads annotations straight from the targets' Attached and
// Inherited methods.
type AttachedReader struct{}

// NewReader returns the default Reader.
func NewReader() AttachedReader {
	return AttachedReader{}
}

// Annotations implements Reader.
func (AttachedReader) Annotations(target Target, inherit bool) []Annotation {
	if target == nil {
		return nil
	}
	own := target.Attached()
	if !inherit {
		return own
	}

	out := append([]Annotation(nil), own...)
	next := target.Inherited()
	for depth := 0; next != nil && depth < maxInheritDepth; depth++ {
		out = append(out, next.Attached()...)
		next = next.Inherited()
	}
	return out
}
