package ballast

import (
	"fmt"
	"reflect"
	"sync"
)

// ServerProvider is the declared structural relation between a composite
// configuration type and the transport capability it contains. Embedding
// ServerConfig satisfies it automatically, so the relation is checked by the
// compiler, not discovered by scanning at projection time:
//
//	var _ ballast.ServerProvider = (*AppConfig)(nil)
type ServerProvider interface {
	AsServerConfig() *ServerConfig
}

type capabilityKey struct {
	target     reflect.Type
	capability reflect.Type
}

var capabilityRegistry sync.Map // capabilityKey -> func(any) any

// MustRegisterCapability declares that *T reaches exactly one *C through
// accessor. Registration is an authoring act done once per type, typically
// from an init function; nil accessors and duplicate declarations panic
// immediately instead of surfacing during configuration resolution.
func MustRegisterCapability[T any, C any](accessor func(*T) *C) {
	if accessor == nil {
		panic("ballast: nil capability accessor")
	}
	key := capabilityKey{
		target:     reflect.TypeOf((*T)(nil)),
		capability: reflect.TypeOf((*C)(nil)),
	}
	wrapped := func(v any) any { return accessor(v.(*T)) }
	if _, loaded := capabilityRegistry.LoadOrStore(key, wrapped); loaded {
		panic(fmt.Sprintf("ballast: capability %s already registered for %s",
			key.capability.Elem(), key.target.Elem()))
	}
}

// ProjectCapability extracts the declared *C out of a bound configuration
// held as any. cfg must be a pointer to the registered target type. Once the
// relation exists the projection is a map lookup plus an accessor call and
// cannot fail; the only error is an undeclared relation, which is a
// CapabilityError. Relations expressed by embedding ServerConfig need no
// registration.
func ProjectCapability[C any](cfg any) (*C, error) {
	key := capabilityKey{
		target:     reflect.TypeOf(cfg),
		capability: reflect.TypeOf((*C)(nil)),
	}
	if accessor, ok := capabilityRegistry.Load(key); ok {
		return accessor.(func(any) any)(cfg).(*C), nil
	}

	if provider, ok := cfg.(ServerProvider); ok {
		if c, ok := any(provider.AsServerConfig()).(*C); ok {
			return c, nil
		}
	}

	return nil, &CapabilityError{
		Target:     fmt.Sprintf("%T", cfg),
		Capability: key.capability.Elem().String(),
	}
}
