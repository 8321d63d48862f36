package thrift

// Union is implemented by generated types that represent a Thrift union:
// at most one field set, decoded with latest-wins semantics (spec.md
// §4.F, §4.G). Embed thrift.UnionType to satisfy it at zero cost.
//
// The binding driver uses a marker interface rather than a struct-tag
// convention because requiredness tags are meaningless on a union's
// fields (every field is inherently optional and mutually exclusive),
// so there is nothing for a tag to say beyond "this is a union" — which
// a type-level fact expresses more directly than a per-field string.
type Union interface {
	thriftUnion()
}

// UnionType is embedded by Thrift union structs to implement Union.
type UnionType struct{}

func (UnionType) thriftUnion() {}
