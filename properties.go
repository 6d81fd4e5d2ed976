package activitystreams

// Property names as they appear in compacted ActivityStreams documents.
const (
	PropID   = "id"
	PropType = "type"

	PropAccuracy     = "accuracy"
	PropActor        = "actor"
	PropAltitude     = "altitude"
	PropAnyOf        = "anyOf"
	PropAttachment   = "attachment"
	PropAttributedTo = "attributedTo"
	PropAudience     = "audience"
	PropBcc          = "bcc"
	PropBto          = "bto"
	PropCc           = "cc"
	PropContent      = "content"
	PropContentMap   = "contentMap"
	PropContext      = "context"
	PropCurrent      = "current"
	PropDeleted      = "deleted"
	PropDescribes    = "describes"
	PropDuration     = "duration"
	PropEndTime      = "endTime"
	PropFirst        = "first"
	PropFormerType   = "formerType"
	PropGenerator    = "generator"
	PropHeight       = "height"
	PropHref         = "href"
	PropHreflang     = "hreflang"
	PropIcon         = "icon"
	PropImage        = "image"
	PropInReplyTo    = "inReplyTo"
	PropInstrument   = "instrument"
	PropItems        = "items"
	PropLast         = "last"
	PropLatitude     = "latitude"
	PropLocation     = "location"
	PropLongitude    = "longitude"
	PropMediaType    = "mediaType"
	PropName         = "name"
	PropNameMap      = "nameMap"
	PropNext         = "next"
	PropObject       = "object"
	PropOneOf        = "oneOf"
	PropOrderedItems = "orderedItems"
	PropOrigin       = "origin"
	PropPartOf       = "partOf"
	PropPrev         = "prev"
	PropPreview      = "preview"
	PropPublished    = "published"
	PropRadius       = "radius"
	PropRel          = "rel"
	PropRelationship = "relationship"
	PropReplies      = "replies"
	PropResult       = "result"
	PropStartIndex   = "startIndex"
	PropStartTime    = "startTime"
	PropSubject      = "subject"
	PropSummary      = "summary"
	PropSummaryMap   = "summaryMap"
	PropTag          = "tag"
	PropTarget       = "target"
	PropTo           = "to"
	PropTotalItems   = "totalItems"
	PropUnits        = "units"
	PropUpdated      = "updated"
	PropURL          = "url"
	PropWidth        = "width"
)
