// Package pipeline defines the host-side contract for pipeline factories.
// A Factory turns an opaque Environment and Context into an opaque Pipeline;
// the registry lets the host discover factories by name.
package pipeline
