package activitystreams

import (
	"github.com/aluitink/ActivityStreams/internal/json"
)

// TermDefinition is one entry of a JSON-LD @context.
//
// It's either a [ReferenceTermDefinition] pointing at a remote context, or an
// [InlineTermDefinition] holding a context object. Contexts are never
// processed, they're kept so that re-encoding a document retains them.
type TermDefinition interface {
	termDefinition()
}

// ReferenceTermDefinition is a context given by IRI, like
// https://www.w3.org/ns/activitystreams.
type ReferenceTermDefinition struct {
	IRI string
}

func (ReferenceTermDefinition) termDefinition() {}

// InlineTermDefinition is a context object. Raw holds it as compacted JSON,
// exactly as it appeared in the document.
type InlineTermDefinition struct {
	Raw json.RawMessage
}

func (InlineTermDefinition) termDefinition() {}

// Terms returns the entries of the context object.
func (t InlineTermDefinition) Terms() (map[string]json.RawMessage, error) {
	var res map[string]json.RawMessage
	if err := json.Unmarshal(t.Raw, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Term returns the IRI a term is mapped to. It handles both the simple
// "term": "iri" form and the expanded "term": {"@id": "iri"} form.
func (t InlineTermDefinition) Term(name string) (string, bool) {
	terms, err := t.Terms()
	if err != nil {
		return "", false
	}

	raw, ok := terms[name]
	if !ok {
		return "", false
	}

	if json.IsString(raw) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}

	if json.IsMap(raw) {
		var def struct {
			ID string `json:"@id"`
		}
		if err := json.Unmarshal(raw, &def); err != nil || def.ID == "" {
			return "", false
		}
		return def.ID, true
	}

	return "", false
}

// DefaultContext returns the @context freshly constructed Objects start out
// with: a reference to the ActivityStreams context.
func DefaultContext() Seq[TermDefinition] {
	return Seq[TermDefinition]{ReferenceTermDefinition{IRI: ContextIRI}}
}

// HasContext returns if the node's @context references iri.
func HasContext(n Node, iri string) bool {
	if n == nil {
		return false
	}

	for _, def := range n.Common().LDContext {
		if ref, ok := def.(ReferenceTermDefinition); ok && ref.IRI == iri {
			return true
		}
	}
	return false
}
