package activitystreams

// IntransitiveActivityFields holds the properties of activities that have no
// object.
type IntransitiveActivityFields struct {
	ObjectFields

	Actor      Seq[Node]
	Target     Seq[Node]
	Result     Seq[Node]
	Origin     Seq[Node]
	Instrument Seq[Node]
}

func (a *IntransitiveActivityFields) properties() []property {
	return append(a.ObjectFields.properties(),
		nodesProp(PropActor, &a.Actor),
		nodesProp(PropTarget, &a.Target),
		nodesProp(PropResult, &a.Result),
		nodesProp(PropOrigin, &a.Origin),
		nodesProp(PropInstrument, &a.Instrument),
	)
}

// ActivityFields holds the properties of the Activity type.
//
// The property order matches the vocabulary: actor, object, target, result,
// origin, instrument.
type ActivityFields struct {
	ObjectFields

	Actor      Seq[Node]
	Object     Seq[Node]
	Target     Seq[Node]
	Result     Seq[Node]
	Origin     Seq[Node]
	Instrument Seq[Node]
}

func (a *ActivityFields) properties() []property {
	return append(a.ObjectFields.properties(),
		nodesProp(PropActor, &a.Actor),
		nodesProp(PropObject, &a.Object),
		nodesProp(PropTarget, &a.Target),
		nodesProp(PropResult, &a.Result),
		nodesProp(PropOrigin, &a.Origin),
		nodesProp(PropInstrument, &a.Instrument),
	)
}

// QuestionFields holds the properties of the Question type. A Question is
// intransitive.
//
// The closed property isn't declared. It accepts an Object, a Link, a
// dateTime or a boolean, so it's kept in [Base.Extensions].
type QuestionFields struct {
	IntransitiveActivityFields

	OneOf Seq[Node]
	AnyOf Seq[Node]
}

func (q *QuestionFields) properties() []property {
	return append(q.IntransitiveActivityFields.properties(),
		nodesProp(PropOneOf, &q.OneOf),
		nodesProp(PropAnyOf, &q.AnyOf),
	)
}
