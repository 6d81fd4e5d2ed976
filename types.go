package activitystreams

import (
	"time"
)

// Vocabulary type names.
const (
	TypeObject                = "Object"
	TypeLink                  = "Link"
	TypeActivity              = "Activity"
	TypeIntransitiveActivity  = "IntransitiveActivity"
	TypeCollection            = "Collection"
	TypeOrderedCollection     = "OrderedCollection"
	TypeCollectionPage        = "CollectionPage"
	TypeOrderedCollectionPage = "OrderedCollectionPage"

	TypeAccept          = "Accept"
	TypeAdd             = "Add"
	TypeAnnounce        = "Announce"
	TypeArrive          = "Arrive"
	TypeBlock           = "Block"
	TypeCreate          = "Create"
	TypeDelete          = "Delete"
	TypeDislike         = "Dislike"
	TypeFlag            = "Flag"
	TypeFollow          = "Follow"
	TypeIgnore          = "Ignore"
	TypeInvite          = "Invite"
	TypeJoin            = "Join"
	TypeLeave           = "Leave"
	TypeLike            = "Like"
	TypeListen          = "Listen"
	TypeMove            = "Move"
	TypeOffer           = "Offer"
	TypeQuestion        = "Question"
	TypeReject          = "Reject"
	TypeRead            = "Read"
	TypeRemove          = "Remove"
	TypeTentativeReject = "TentativeReject"
	TypeTentativeAccept = "TentativeAccept"
	TypeTravel          = "Travel"
	TypeUndo            = "Undo"
	TypeUpdate          = "Update"
	TypeView            = "View"
	TypeApplication     = "Application"
	TypeGroup           = "Group"
	TypeOrganization    = "Organization"
	TypePerson          = "Person"
	TypeService         = "Service"
	TypeArticle         = "Article"
	TypeAudio           = "Audio"
	TypeDocument        = "Document"
	TypeEvent           = "Event"
	TypeImage           = "Image"
	TypeNote            = "Note"
	TypePage            = "Page"
	TypePlace           = "Place"
	TypeProfile         = "Profile"
	TypeRelationship    = "Relationship"
	TypeTombstone       = "Tombstone"
	TypeVideo           = "Video"
	TypeMention         = "Mention"
)

// PlaceFields holds the properties of the Place type.
type PlaceFields struct {
	ObjectFields

	Accuracy  Optional[float64] // percentage, 0 to 100
	Altitude  Optional[float64]
	Latitude  Optional[float64]
	Longitude Optional[float64]
	Radius    Optional[float64]
	Units     string // cm, feet, inches, km, m, miles or an IRI
}

func (p *PlaceFields) properties() []property {
	return append(p.ObjectFields.properties(),
		optionalProp(PropAccuracy, &p.Accuracy),
		optionalProp(PropAltitude, &p.Altitude),
		optionalProp(PropLatitude, &p.Latitude),
		optionalProp(PropLongitude, &p.Longitude),
		optionalProp(PropRadius, &p.Radius),
		stringProp(PropUnits, &p.Units),
	)
}

// ProfileFields holds the properties of the Profile type.
type ProfileFields struct {
	ObjectFields

	Describes Node
}

func (p *ProfileFields) properties() []property {
	return append(p.ObjectFields.properties(),
		nodeProp(PropDescribes, &p.Describes),
	)
}

// RelationshipFields holds the properties of the Relationship type. Subject
// is related to each Object by the Relationship.
type RelationshipFields struct {
	ObjectFields

	Subject      Node
	Object       Seq[Node]
	Relationship Seq[Node]
}

func (r *RelationshipFields) properties() []property {
	return append(r.ObjectFields.properties(),
		nodeProp(PropSubject, &r.Subject),
		nodesProp(PropObject, &r.Object),
		nodesProp(PropRelationship, &r.Relationship),
	)
}

// TombstoneFields holds the properties of the Tombstone type.
type TombstoneFields struct {
	ObjectFields

	FormerType Seq[string]
	Deleted    time.Time
}

func (t *TombstoneFields) properties() []property {
	return append(t.ObjectFields.properties(),
		stringsProp(PropFormerType, &t.FormerType),
		timeProp(PropDeleted, &t.Deleted),
	)
}

// Activity is an action that has been or could be taken by an actor.
type Activity struct{ ActivityFields }

// NewActivity creates an Activity.
func NewActivity() *Activity {
	n := &Activity{}
	n.init(TypeActivity)
	return n
}

// IntransitiveActivity is an Activity that has no object.
type IntransitiveActivity struct{ IntransitiveActivityFields }

// NewIntransitiveActivity creates an IntransitiveActivity.
func NewIntransitiveActivity() *IntransitiveActivity {
	n := &IntransitiveActivity{}
	n.init(TypeIntransitiveActivity)
	return n
}

// Collection is an unordered set of items.
type Collection struct{ CollectionFields }

// NewCollection creates a Collection.
func NewCollection() *Collection {
	n := &Collection{}
	n.init(TypeCollection)
	return n
}

// OrderedCollection is a Collection whose items are strictly ordered.
type OrderedCollection struct{ OrderedCollectionFields }

// NewOrderedCollection creates an OrderedCollection.
func NewOrderedCollection() *OrderedCollection {
	n := &OrderedCollection{}
	n.init(TypeOrderedCollection)
	return n
}

// CollectionPage is one page of a Collection.
type CollectionPage struct{ CollectionPageFields }

// NewCollectionPage creates a CollectionPage.
func NewCollectionPage() *CollectionPage {
	n := &CollectionPage{}
	n.init(TypeCollectionPage)
	return n
}

func (*CollectionPage) pageOrLink() {}

// OrderedCollectionPage is one page of an OrderedCollection.
type OrderedCollectionPage struct{ OrderedCollectionPageFields }

// NewOrderedCollectionPage creates an OrderedCollectionPage.
func NewOrderedCollectionPage() *OrderedCollectionPage {
	n := &OrderedCollectionPage{}
	n.init(TypeOrderedCollectionPage)
	return n
}

func (*OrderedCollectionPage) pageOrLink() {}

// Accept indicates the actor accepts the object.
type Accept struct{ ActivityFields }

// NewAccept creates an Accept.
func NewAccept() *Accept {
	n := &Accept{}
	n.init(TypeAccept)
	return n
}

// Add indicates the actor added the object to the target.
type Add struct{ ActivityFields }

// NewAdd creates an Add.
func NewAdd() *Add {
	n := &Add{}
	n.init(TypeAdd)
	return n
}

// Announce indicates the actor is calling the target's attention to the object.
type Announce struct{ ActivityFields }

// NewAnnounce creates an Announce.
func NewAnnounce() *Announce {
	n := &Announce{}
	n.init(TypeAnnounce)
	return n
}

// Arrive indicates the actor has arrived at the location.
type Arrive struct{ IntransitiveActivityFields }

// NewArrive creates an Arrive.
func NewArrive() *Arrive {
	n := &Arrive{}
	n.init(TypeArrive)
	return n
}

// Block indicates the actor is blocking the object.
type Block struct{ ActivityFields }

// NewBlock creates a Block.
func NewBlock() *Block {
	n := &Block{}
	n.init(TypeBlock)
	return n
}

// Create indicates the actor has created the object.
type Create struct{ ActivityFields }

// NewCreate creates a Create.
func NewCreate() *Create {
	n := &Create{}
	n.init(TypeCreate)
	return n
}

// Delete indicates the actor has deleted the object.
type Delete struct{ ActivityFields }

// NewDelete creates a Delete.
func NewDelete() *Delete {
	n := &Delete{}
	n.init(TypeDelete)
	return n
}

// Dislike indicates the actor dislikes the object.
type Dislike struct{ ActivityFields }

// NewDislike creates a Dislike.
func NewDislike() *Dislike {
	n := &Dislike{}
	n.init(TypeDislike)
	return n
}

// Flag indicates the actor is flagging the object, usually as inappropriate.
type Flag struct{ ActivityFields }

// NewFlag creates a Flag.
func NewFlag() *Flag {
	n := &Flag{}
	n.init(TypeFlag)
	return n
}

// Follow indicates the actor is following the object.
type Follow struct{ ActivityFields }

// NewFollow creates a Follow.
func NewFollow() *Follow {
	n := &Follow{}
	n.init(TypeFollow)
	return n
}

// Ignore indicates the actor is ignoring the object.
type Ignore struct{ ActivityFields }

// NewIgnore creates an Ignore.
func NewIgnore() *Ignore {
	n := &Ignore{}
	n.init(TypeIgnore)
	return n
}

// Invite is an Offer where the actor extends an invitation to the object for the target.
type Invite struct{ ActivityFields }

// NewInvite creates an Invite.
func NewInvite() *Invite {
	n := &Invite{}
	n.init(TypeInvite)
	return n
}

// Join indicates the actor has joined the object.
type Join struct{ ActivityFields }

// NewJoin creates a Join.
func NewJoin() *Join {
	n := &Join{}
	n.init(TypeJoin)
	return n
}

// Leave indicates the actor has left the object.
type Leave struct{ ActivityFields }

// NewLeave creates a Leave.
func NewLeave() *Leave {
	n := &Leave{}
	n.init(TypeLeave)
	return n
}

// Like indicates the actor likes the object.
type Like struct{ ActivityFields }

// NewLike creates a Like.
func NewLike() *Like {
	n := &Like{}
	n.init(TypeLike)
	return n
}

// Listen indicates the actor has listened to the object.
type Listen struct{ ActivityFields }

// NewListen creates a Listen.
func NewListen() *Listen {
	n := &Listen{}
	n.init(TypeListen)
	return n
}

// Move indicates the actor has moved the object from origin to target.
type Move struct{ ActivityFields }

// NewMove creates a Move.
func NewMove() *Move {
	n := &Move{}
	n.init(TypeMove)
	return n
}

// Offer indicates the actor is offering the object to the target.
type Offer struct{ ActivityFields }

// NewOffer creates an Offer.
func NewOffer() *Offer {
	n := &Offer{}
	n.init(TypeOffer)
	return n
}

// Question represents a question being asked. Its possible answers are in oneOf or anyOf.
type Question struct{ QuestionFields }

// NewQuestion creates a Question.
func NewQuestion() *Question {
	n := &Question{}
	n.init(TypeQuestion)
	return n
}

// Reject indicates the actor is rejecting the object.
type Reject struct{ ActivityFields }

// NewReject creates a Reject.
func NewReject() *Reject {
	n := &Reject{}
	n.init(TypeReject)
	return n
}

// Read indicates the actor has read the object.
type Read struct{ ActivityFields }

// NewRead creates a Read.
func NewRead() *Read {
	n := &Read{}
	n.init(TypeRead)
	return n
}

// Remove indicates the actor is removing the object, from the origin if given.
type Remove struct{ ActivityFields }

// NewRemove creates a Remove.
func NewRemove() *Remove {
	n := &Remove{}
	n.init(TypeRemove)
	return n
}

// TentativeReject is a Reject where the rejection is tentative.
type TentativeReject struct{ ActivityFields }

// NewTentativeReject creates a TentativeReject.
func NewTentativeReject() *TentativeReject {
	n := &TentativeReject{}
	n.init(TypeTentativeReject)
	return n
}

// TentativeAccept is an Accept where the acceptance is tentative.
type TentativeAccept struct{ ActivityFields }

// NewTentativeAccept creates a TentativeAccept.
func NewTentativeAccept() *TentativeAccept {
	n := &TentativeAccept{}
	n.init(TypeTentativeAccept)
	return n
}

// Travel indicates the actor is traveling to the target from the origin.
type Travel struct{ IntransitiveActivityFields }

// NewTravel creates a Travel.
func NewTravel() *Travel {
	n := &Travel{}
	n.init(TypeTravel)
	return n
}

// Undo indicates the actor is undoing the object, a previous Activity.
type Undo struct{ ActivityFields }

// NewUndo creates an Undo.
func NewUndo() *Undo {
	n := &Undo{}
	n.init(TypeUndo)
	return n
}

// Update indicates the actor has updated the object.
type Update struct{ ActivityFields }

// NewUpdate creates an Update.
func NewUpdate() *Update {
	n := &Update{}
	n.init(TypeUpdate)
	return n
}

// View indicates the actor has viewed the object.
type View struct{ ActivityFields }

// NewView creates a View.
func NewView() *View {
	n := &View{}
	n.init(TypeView)
	return n
}

// Application describes a software application.
type Application struct{ ObjectFields }

// NewApplication creates an Application.
func NewApplication() *Application {
	n := &Application{}
	n.init(TypeApplication)
	return n
}

// Group represents a formal or informal collective of actors.
type Group struct{ ObjectFields }

// NewGroup creates a Group.
func NewGroup() *Group {
	n := &Group{}
	n.init(TypeGroup)
	return n
}

// Organization represents an organization.
type Organization struct{ ObjectFields }

// NewOrganization creates an Organization.
func NewOrganization() *Organization {
	n := &Organization{}
	n.init(TypeOrganization)
	return n
}

// Person represents an individual person.
type Person struct{ ObjectFields }

// NewPerson creates a Person.
func NewPerson() *Person {
	n := &Person{}
	n.init(TypePerson)
	return n
}

// Service represents a service of any kind.
type Service struct{ ObjectFields }

// NewService creates a Service.
func NewService() *Service {
	n := &Service{}
	n.init(TypeService)
	return n
}

// Article represents any kind of multi-paragraph written work.
type Article struct{ ObjectFields }

// NewArticle creates an Article.
func NewArticle() *Article {
	n := &Article{}
	n.init(TypeArticle)
	return n
}

// Audio represents an audio document of any kind.
type Audio struct{ ObjectFields }

// NewAudio creates an Audio.
func NewAudio() *Audio {
	n := &Audio{}
	n.init(TypeAudio)
	return n
}

// Document represents a document of any kind.
type Document struct{ ObjectFields }

// NewDocument creates a Document.
func NewDocument() *Document {
	n := &Document{}
	n.init(TypeDocument)
	return n
}

// Event represents any kind of event.
type Event struct{ ObjectFields }

// NewEvent creates an Event.
func NewEvent() *Event {
	n := &Event{}
	n.init(TypeEvent)
	return n
}

// Image is an image document of any kind.
type Image struct{ ObjectFields }

// NewImage creates an Image.
func NewImage() *Image {
	n := &Image{}
	n.init(TypeImage)
	return n
}

// Note represents a short written work, typically less than a single paragraph.
type Note struct{ ObjectFields }

// NewNote creates a Note.
func NewNote() *Note {
	n := &Note{}
	n.init(TypeNote)
	return n
}

// Page represents a web page.
type Page struct{ ObjectFields }

// NewPage creates a Page.
func NewPage() *Page {
	n := &Page{}
	n.init(TypePage)
	return n
}

// Place represents a logical or physical location.
type Place struct{ PlaceFields }

// NewPlace creates a Place.
func NewPlace() *Place {
	n := &Place{}
	n.init(TypePlace)
	return n
}

// Profile is a content object describing another Object.
type Profile struct{ ProfileFields }

// NewProfile creates a Profile.
func NewProfile() *Profile {
	n := &Profile{}
	n.init(TypeProfile)
	return n
}

// Relationship describes a relationship between two individuals.
type Relationship struct{ RelationshipFields }

// NewRelationship creates a Relationship.
func NewRelationship() *Relationship {
	n := &Relationship{}
	n.init(TypeRelationship)
	return n
}

// Tombstone is a placeholder for an Object that has been deleted.
type Tombstone struct{ TombstoneFields }

// NewTombstone creates a Tombstone.
func NewTombstone() *Tombstone {
	n := &Tombstone{}
	n.init(TypeTombstone)
	return n
}

// Video represents a video document of any kind.
type Video struct{ ObjectFields }

// NewVideo creates a Video.
func NewVideo() *Video {
	n := &Video{}
	n.init(TypeVideo)
	return n
}
