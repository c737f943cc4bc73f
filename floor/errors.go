package floor

import "go.trai.ch/zerr"

var (
	// ErrMissingCacheEntry is returned by Enable when a collidable has no cached
	// attributes, i.e. it was added after the last cache pass.
	ErrMissingCacheEntry = zerr.New("missing cache entry")

	// ErrUnresolvedReference is returned when a node handle no longer names a live node.
	ErrUnresolvedReference = zerr.New("unresolved node reference")

	// ErrMissingConventionalChild is returned by SpawnPoint when the spawn path is absent.
	ErrMissingConventionalChild = zerr.New("missing conventional child")

	// ErrNotInitialized is returned by any operation that runs before Initialize.
	ErrNotInitialized = zerr.New("floor cache not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize call.
	ErrAlreadyInitialized = zerr.New("floor cache already initialized")

	// ErrNotAgent is returned when a node registered as an agent carries no Agent.
	ErrNotAgent = zerr.New("node is not a floor agent")
)
