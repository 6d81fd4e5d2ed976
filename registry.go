package activitystreams

import (
	"iter"
	"strings"
)

// Constructor creates a fresh, empty variant.
type Constructor func() Node

type entry struct {
	tag string
	new Constructor
}

// vocabulary lists every known type. The order is what [Types] returns.
var vocabulary = []entry{
	{TypeObject, func() Node { return NewObject() }},
	{TypeLink, func() Node { return NewLink("") }},
	{TypeActivity, func() Node { return NewActivity() }},
	{TypeIntransitiveActivity, func() Node { return NewIntransitiveActivity() }},
	{TypeCollection, func() Node { return NewCollection() }},
	{TypeOrderedCollection, func() Node { return NewOrderedCollection() }},
	{TypeCollectionPage, func() Node { return NewCollectionPage() }},
	{TypeOrderedCollectionPage, func() Node { return NewOrderedCollectionPage() }},

	{TypeAccept, func() Node { return NewAccept() }},
	{TypeAdd, func() Node { return NewAdd() }},
	{TypeAnnounce, func() Node { return NewAnnounce() }},
	{TypeArrive, func() Node { return NewArrive() }},
	{TypeBlock, func() Node { return NewBlock() }},
	{TypeCreate, func() Node { return NewCreate() }},
	{TypeDelete, func() Node { return NewDelete() }},
	{TypeDislike, func() Node { return NewDislike() }},
	{TypeFlag, func() Node { return NewFlag() }},
	{TypeFollow, func() Node { return NewFollow() }},
	{TypeIgnore, func() Node { return NewIgnore() }},
	{TypeInvite, func() Node { return NewInvite() }},
	{TypeJoin, func() Node { return NewJoin() }},
	{TypeLeave, func() Node { return NewLeave() }},
	{TypeLike, func() Node { return NewLike() }},
	{TypeListen, func() Node { return NewListen() }},
	{TypeMove, func() Node { return NewMove() }},
	{TypeOffer, func() Node { return NewOffer() }},
	{TypeQuestion, func() Node { return NewQuestion() }},
	{TypeReject, func() Node { return NewReject() }},
	{TypeRead, func() Node { return NewRead() }},
	{TypeRemove, func() Node { return NewRemove() }},
	{TypeTentativeReject, func() Node { return NewTentativeReject() }},
	{TypeTentativeAccept, func() Node { return NewTentativeAccept() }},
	{TypeTravel, func() Node { return NewTravel() }},
	{TypeUndo, func() Node { return NewUndo() }},
	{TypeUpdate, func() Node { return NewUpdate() }},
	{TypeView, func() Node { return NewView() }},

	{TypeApplication, func() Node { return NewApplication() }},
	{TypeGroup, func() Node { return NewGroup() }},
	{TypeOrganization, func() Node { return NewOrganization() }},
	{TypePerson, func() Node { return NewPerson() }},
	{TypeService, func() Node { return NewService() }},

	{TypeArticle, func() Node { return NewArticle() }},
	{TypeAudio, func() Node { return NewAudio() }},
	{TypeDocument, func() Node { return NewDocument() }},
	{TypeEvent, func() Node { return NewEvent() }},
	{TypeImage, func() Node { return NewImage() }},
	{TypeNote, func() Node { return NewNote() }},
	{TypePage, func() Node { return NewPage() }},
	{TypePlace, func() Node { return NewPlace() }},
	{TypeProfile, func() Node { return NewProfile() }},
	{TypeRelationship, func() Node { return NewRelationship() }},
	{TypeTombstone, func() Node { return NewTombstone() }},
	{TypeVideo, func() Node { return NewVideo() }},

	{TypeMention, func() Node { return NewMention("") }},
}

var registry = func() map[string]Constructor {
	res := make(map[string]Constructor, len(vocabulary))
	for _, e := range vocabulary {
		res[e.tag] = e.new
	}
	return res
}()

// shortTerm strips the ActivityStreams namespace, or the as: prefix, from a
// type tag. Anything else is returned unchanged.
func shortTerm(tag string) string {
	switch {
	case strings.HasPrefix(tag, Namespace):
		return tag[len(Namespace):]
	case strings.HasPrefix(tag, "http://www.w3.org/ns/activitystreams#"):
		return tag[len("http://www.w3.org/ns/activitystreams#"):]
	case strings.HasPrefix(tag, compactPrefix):
		return tag[len(compactPrefix):]
	default:
		return tag
	}
}

// Lookup returns the constructor for a type tag. Tags match as a term like
// Note, as a compact IRI like as:Note, and as a full IRI in the
// ActivityStreams namespace.
func Lookup(tag string) (Constructor, bool) {
	c, ok := registry[shortTerm(tag)]
	return c, ok
}

// Resolve returns the constructor for the first tag in types that's part of
// the vocabulary. It returns false if none of them are.
func Resolve(types []string) (Constructor, string, bool) {
	for _, t := range types {
		if c, ok := Lookup(t); ok {
			return c, t, true
		}
	}
	return nil, "", false
}

// Types returns the names of all vocabulary types.
func Types() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range vocabulary {
			if !yield(e.tag) {
				return
			}
		}
	}
}

// IsLinkType returns if tag is Link or one of its subtypes.
func IsLinkType(tag string) bool {
	c, ok := Lookup(tag)
	if !ok {
		return false
	}
	_, isLink := c().AsLink()
	return isLink
}
