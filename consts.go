package activitystreams

// ActivityStreams namespace and context.
const (
	// Namespace is the IRI prefix of every term in the vocabulary.
	Namespace = "https://www.w3.org/ns/activitystreams#"

	// ContextIRI is the canonical @context of ActivityStreams documents.
	ContextIRI = "https://www.w3.org/ns/activitystreams"

	// Public is the special collection addressing everyone.
	Public = Namespace + "Public"

	// compactPrefix is the prefix the normative context defines for
	// Namespace.
	compactPrefix = "as:"
)

// MIME types for ActivityStreams documents.
const (
	ApplicationActivityJSON = "application/activity+json"
	ApplicationLDJSON       = "application/ld+json"
	ApplicationJSON         = "application/json"

	// ProfileActivityStreams is the profile parameter to use together with
	// [ApplicationLDJSON].
	ProfileActivityStreams = ContextIRI
)

// DefaultMaxDepth is the default nesting limit for decoding.
const DefaultMaxDepth = 64
