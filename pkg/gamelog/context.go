package gamelog

// UnknownContext is the context name used when a caller cannot be resolved
// to a usable name.
const UnknownContext = "UnknownContext"

// Contextual is anything that can identify itself as the origin of a log
// event. Hosts implement this on their actors, components and services.
type Contextual interface {
	DisplayName() string
}

// Owned is a Contextual that belongs to a larger named entity, such as a
// component attached to an actor. Its log context becomes "Owner.Part".
type Owned interface {
	Contextual
	Owner() Contextual
}

// Resolver turns a caller into a context name. A custom resolver may be
// installed on a Logger; ResolveContext is the default.
type Resolver func(caller Contextual) string

// ResolveContext resolves a caller to a context name. An owned caller with a
// named owner resolves to "Owner.Part"; any other named caller resolves to
// its own name; a nil or nameless caller resolves to UnknownContext.
func ResolveContext(caller Contextual) string {
	if caller == nil {
		return UnknownContext
	}

	name := caller.DisplayName()
	if name == "" {
		return UnknownContext
	}

	if part, ok := caller.(Owned); ok {
		if owner := part.Owner(); owner != nil {
			if ownerName := owner.DisplayName(); ownerName != "" {
				return ownerName + "." + name
			}
		}
	}

	return name
}
