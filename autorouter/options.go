package autorouter

// RouterOptions configures how a single ratline is routed.
type RouterOptions struct {
	WrapAroundBands          bool
	SqueezeThroughUnderBands bool
}

// AutorouteOptions configures a whole Autoroute invocation.
type AutorouteOptions struct {
	PresortByPairwiseDetours bool
	Router                   RouterOptions
}

// Option mutates AutorouteOptions, following the functional-options
// idiom.
type Option func(*AutorouteOptions)

// WithPresortByPairwiseDetours enables the CompareDetours ratline
// ordering pass before routing begins.
func WithPresortByPairwiseDetours() Option {
	return func(o *AutorouteOptions) { o.PresortByPairwiseDetours = true }
}

// WithWrapAroundBands sets Router.WrapAroundBands. No routing code reads
// the field: a route may wrap around existing loose bands of other nets
// whether or not it is set.
func WithWrapAroundBands() Option {
	return func(o *AutorouteOptions) { o.Router.WrapAroundBands = true }
}

// WithSqueezeThroughUnderBands sets Router.SqueezeThroughUnderBands. No
// routing code reads the field, so it does not change how a route is
// found.
func WithSqueezeThroughUnderBands() Option {
	return func(o *AutorouteOptions) { o.Router.SqueezeThroughUnderBands = true }
}
