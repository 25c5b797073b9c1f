package dbpool

import "context"

// Open builds the primary application pool for the backend selected from the
// captured Environment (see SelectBackend). When a networked-server URL is
// present the embedded-file builder is never consulted, so embedded-only
// properties cannot fail a networked startup and vice versa (I4).
func Open(ctx context.Context, props DatabaseProperties, env Environment, opts ...Option) (ConnectionPool, error) {
	switch SelectBackend(env) {
	case Networked:
		return ConnectServer(ctx, env, opts...)
	default:
		return OpenEmbedded(ctx, props, opts...)
	}
}
