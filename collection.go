package activitystreams

// PageOrLink is the value of the current, first, last, next and prev
// properties: a [*CollectionPage], an [*OrderedCollectionPage] or a [*Link].
type PageOrLink interface {
	Node
	pageOrLink()
}

// CollectionFields holds the properties of the Collection type.
type CollectionFields struct {
	ObjectFields

	TotalItems Optional[uint64]
	Current    PageOrLink
	First      PageOrLink
	Last       PageOrLink
	Items      Seq[Node]
}

func (c *CollectionFields) properties() []property {
	return append(c.ObjectFields.properties(),
		optionalProp(PropTotalItems, &c.TotalItems),
		pageProp(PropCurrent, &c.Current),
		pageProp(PropFirst, &c.First),
		pageProp(PropLast, &c.Last),
		nodesProp(PropItems, &c.Items),
	)
}

// OrderedCollectionFields holds the properties of the OrderedCollection type.
// Its items are in orderedItems, which is an ordered list on the wire.
type OrderedCollectionFields struct {
	ObjectFields

	TotalItems   Optional[uint64]
	Current      PageOrLink
	First        PageOrLink
	Last         PageOrLink
	OrderedItems Seq[Node]
}

func (c *OrderedCollectionFields) properties() []property {
	return append(c.ObjectFields.properties(),
		optionalProp(PropTotalItems, &c.TotalItems),
		pageProp(PropCurrent, &c.Current),
		pageProp(PropFirst, &c.First),
		pageProp(PropLast, &c.Last),
		nodesProp(PropOrderedItems, &c.OrderedItems),
	)
}

// CollectionPageFields holds the properties of the CollectionPage type.
type CollectionPageFields struct {
	CollectionFields

	PartOf Node
	Next   PageOrLink
	Prev   PageOrLink
}

func (c *CollectionPageFields) properties() []property {
	return append(c.CollectionFields.properties(),
		nodeProp(PropPartOf, &c.PartOf),
		pageProp(PropNext, &c.Next),
		pageProp(PropPrev, &c.Prev),
	)
}

// OrderedCollectionPageFields holds the properties of the
// OrderedCollectionPage type.
type OrderedCollectionPageFields struct {
	OrderedCollectionFields

	PartOf     Node
	Next       PageOrLink
	Prev       PageOrLink
	StartIndex Optional[uint64]
}

func (c *OrderedCollectionPageFields) properties() []property {
	return append(c.OrderedCollectionFields.properties(),
		nodeProp(PropPartOf, &c.PartOf),
		pageProp(PropNext, &c.Next),
		pageProp(PropPrev, &c.Prev),
		optionalProp(PropStartIndex, &c.StartIndex),
	)
}
