package activitystreams

import (
	"time"
)

// ObjectFields holds the properties of the Object type. Every Object-rooted
// variant embeds it.
type ObjectFields struct {
	Base

	Attachment   Seq[Node]
	AttributedTo Seq[Node]
	Audience     Seq[Node]
	Bcc          Seq[Node]
	Bto          Seq[Node]
	Cc           Seq[Node]
	Content      Seq[string]
	ContentMap   Seq[LangMap]
	Context      Seq[Node]
	Duration     *Duration
	EndTime      time.Time
	Generator    Seq[Node]
	Icon         Seq[Node]
	Image        Seq[Node]
	InReplyTo    Seq[Node]
	Location     Seq[Node]
	Published    time.Time
	Replies      Node
	StartTime    time.Time
	Summary      Seq[string]
	SummaryMap   Seq[LangMap]
	Tag          Seq[Node]
	To           Seq[Node]
	Updated      time.Time
	URL          Seq[Node]
}

// AsObject returns o.
func (o *ObjectFields) AsObject() (*ObjectFields, bool) {
	return o, true
}

// AsLink always fails for Objects.
func (o *ObjectFields) AsLink() (*LinkFields, bool) {
	return nil, false
}

// init sets the type tag and asserts the ActivityStreams context.
func (o *ObjectFields) init(tag string) {
	o.Base.init(tag)
	o.LDContext = DefaultContext()
}

func (o *ObjectFields) properties() []property {
	return append(o.baseProperties(),
		nodesProp(PropAttachment, &o.Attachment),
		nodesProp(PropAttributedTo, &o.AttributedTo),
		nodesProp(PropAudience, &o.Audience),
		nodesProp(PropBcc, &o.Bcc),
		nodesProp(PropBto, &o.Bto),
		nodesProp(PropCc, &o.Cc),
		stringsProp(PropContent, &o.Content),
		langMapsProp(PropContentMap, &o.ContentMap),
		nodesProp(PropContext, &o.Context),
		durationProp(PropDuration, &o.Duration),
		timeProp(PropEndTime, &o.EndTime),
		nodesProp(PropGenerator, &o.Generator),
		nodesProp(PropIcon, &o.Icon),
		nodesProp(PropImage, &o.Image),
		nodesProp(PropInReplyTo, &o.InReplyTo),
		nodesProp(PropLocation, &o.Location),
		timeProp(PropPublished, &o.Published),
		nodeProp(PropReplies, &o.Replies),
		timeProp(PropStartTime, &o.StartTime),
		stringsProp(PropSummary, &o.Summary),
		langMapsProp(PropSummaryMap, &o.SummaryMap),
		nodesProp(PropTag, &o.Tag),
		nodesProp(PropTo, &o.To),
		timeProp(PropUpdated, &o.Updated),
		nodesProp(PropURL, &o.URL),
	)
}

// Object is the generic Object variant.
//
// It's what documents decode to when they have no type, or none of their
// types are part of the vocabulary.
type Object struct{ ObjectFields }

// NewObject creates an Object.
func NewObject() *Object {
	n := &Object{}
	n.init(TypeObject)
	return n
}
