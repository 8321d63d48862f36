package thrift

// Options configures a Reader, Writer, Marshal, or Unmarshal call.
// Constructed only through Option functions, following the same
// functional-options shape the rest of the pack uses for schema
// configuration.
type Options struct {
	maxDepth            int
	maxListSize         int
	maxBinarySize       int
	lenientListElements bool
}

// DefaultOptions returns the configuration used when no Option is given:
// a nesting depth bound of 64 (spec.md §5), a list/set size ceiling of
// 65536 elements, and a binary/string length ceiling of 64MiB, guarding
// against a corrupt or hostile size field (spec.md §9's open question on
// unbounded u32 list sizes).
func DefaultOptions() *Options {
	return &Options{
		maxDepth:      64,
		maxListSize:   1 << 16,
		maxBinarySize: 64 << 20,
	}
}

func (o *Options) apply(opts []Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures Options.
type Option func(*Options)

// WithMaxDepth overrides the struct/list nesting bound. Exceeding it
// raises a StackDepth error instead of growing the internal stacks
// without bound.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.maxDepth = n }
}

// WithMaxListSize overrides the maximum element count accepted from a
// list or set header before any allocation is attempted. Exceeding it
// raises an Overflow error.
func WithMaxListSize(n int) Option {
	return func(o *Options) { o.maxListSize = n }
}

// WithMaxBinarySize overrides the maximum byte length accepted from a
// binary/string length prefix before any allocation is attempted.
// Exceeding it raises an Overflow error.
func WithMaxBinarySize(n int) Option {
	return func(o *Options) { o.maxBinarySize = n }
}

// WithLenientListElements makes the binding driver drop list elements
// that fail with CantParseUnion or RequiredFieldMissing instead of
// aborting the whole list, per the policy-dependent recovery spec.md
// §4.G describes. The default is strict: any element error propagates.
func WithLenientListElements(lenient bool) Option {
	return func(o *Options) { o.lenientListElements = lenient }
}

func resolveOptions(opts []Option) *Options {
	return DefaultOptions().apply(opts)
}
