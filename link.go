package activitystreams

// LinkFields holds the properties of the Link type. Every Link-rooted variant
// embeds it.
type LinkFields struct {
	Base

	Href     string
	Rel      Seq[string]
	Hreflang string
	Height   Optional[uint64]
	Width    Optional[uint64]
}

// AsObject always fails for Links.
func (l *LinkFields) AsObject() (*ObjectFields, bool) {
	return nil, false
}

// AsLink returns l.
func (l *LinkFields) AsLink() (*LinkFields, bool) {
	return l, true
}

func (l *LinkFields) properties() []property {
	return append(l.baseProperties(),
		hrefProp(PropHref, &l.Href),
		stringsProp(PropRel, &l.Rel),
		stringProp(PropHreflang, &l.Hreflang),
		optionalProp(PropHeight, &l.Height),
		optionalProp(PropWidth, &l.Width),
	)
}

// Link is a qualified reference to a resource.
//
// A Link without a type that has nothing but an href is a plain reference.
// It's what a bare string decodes to, and it encodes back to a bare string.
type Link struct{ LinkFields }

// NewLink creates a Link. Unlike Objects, Links don't assert a @context.
func NewLink(href string) *Link {
	n := &Link{}
	n.init(TypeLink)
	n.Href = href
	return n
}

// IRI creates a plain reference to href.
func IRI(href string) *Link {
	return &Link{LinkFields: LinkFields{Href: href}}
}

// IsReference returns if the link is a plain reference that encodes to a
// bare string: it has no type and nothing but an href.
func (l *Link) IsReference() bool {
	return l.Type == nil &&
		l.LDContext == nil &&
		l.ID == "" &&
		l.Name == nil &&
		l.NameMap == nil &&
		l.MediaType == "" &&
		l.Preview == nil &&
		l.Rel == nil &&
		l.Hreflang == "" &&
		!l.Height.Set &&
		!l.Width.Set &&
		len(l.Extensions) == 0
}

func (*Link) pageOrLink() {}

// Mention is a Link to a person or thing mentioned in the content of an
// Object.
type Mention struct{ LinkFields }

// NewMention creates a Mention.
func NewMention(href string) *Mention {
	n := &Mention{}
	n.init(TypeMention)
	n.Href = href
	return n
}
