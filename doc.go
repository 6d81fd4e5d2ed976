// Package activitystreams decodes and encodes ActivityStreams 2.0 documents.
//
// Decoding turns a document into a typed graph of [Node]. Each node is one of
// the vocabulary's variants, like [*Note], [*Person] or [*Link]. The variant
// is picked based on the type property. Nodes without a type, or without a
// type the vocabulary knows about, decode as a generic [*Object]. The type
// property always retains the tags as they were in the document.
//
// Encoding does the reverse and never fails. The result is equivalent to a
// second decode and encode cycle, byte for byte.
//
// Use [Unmarshal] and [Marshal], or create a [Codec] with [NewCodec] to change
// the defaults.
//
// # Cardinality
//
// Most properties can have one or more values. In a document they can be a
// bare value or an array. They're decoded into a [Seq] regardless. When
// encoding, a Seq with a single value is written as a bare value.
//
// A nil Seq means the property is absent. An empty Seq means it's present but
// empty. Empty properties are omitted when encoding, unless the codec is
// configured with [WithKeepEmpty].
//
// # Objects and Links
//
// A property that can hold an Object or a Link decodes:
//   - A string into a [*Link] with only Href set. It encodes back into a string.
//   - An object with a type of Link into a [*Link].
//   - An object with a type of a Link subtype, like Mention, into that subtype.
//   - Anything else into an Object-rooted variant. An object without a type
//     is an [*Object], even if it has an href.
//
// The current, first, last, next and prev properties only accept a Link, a
// CollectionPage or an OrderedCollectionPage. Any other type is an
// [ErrUnknownRequiredType].
//
// # Extensions
//
// Properties a variant doesn't declare are kept as raw JSON in
// [Base.Extensions] and written back out when encoding. This includes
// properties from other vocabularies. The JSON-LD context is not processed.
package activitystreams
