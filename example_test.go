package activitystreams_test

import (
	"fmt"

	as "github.com/aluitink/ActivityStreams"
)

func Example() {
	incoming := []byte(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"type": "Create",
		"actor": "https://example.org/alice",
		"object": {
			"type": "Note",
			"content": "Hello <b>world</b>",
			"tag": [
				{"type": "Mention", "href": "https://example.org/bob"},
				{"type": "http://example.org/Hashtag", "name": "#hello"}
			]
		}
	}`)

	n, err := as.Unmarshal(incoming)
	if err != nil {
		panic(err)
	}

	create := n.(*as.Create)
	note := create.Object[0].(*as.Note)

	fmt.Printf("Activity: %T\n", n)
	fmt.Println("Actor:", create.Actor[0].(*as.Link).Href)
	fmt.Println("Content:", note.Content[0])
	for _, tag := range note.Tag {
		fmt.Printf("Tag: %T %v\n", tag, tag.Common().Type)
	}

	fmt.Println(string(as.Marshal(n)))

	// Output:
	// Activity: *activitystreams.Create
	// Actor: https://example.org/alice
	// Content: Hello <b>world</b>
	// Tag: *activitystreams.Mention [Mention]
	// Tag: *activitystreams.Object [http://example.org/Hashtag]
	// {"@context":"https://www.w3.org/ns/activitystreams","type":"Create","actor":"https://example.org/alice","object":{"type":"Note","content":"Hello <b>world</b>","tag":[{"type":"Mention","href":"https://example.org/bob"},{"type":"http://example.org/Hashtag","name":"#hello"}]}}
}

func ExampleNewNote() {
	note := as.NewNote()
	note.ID = "https://example.org/notes/1"
	note.AttributedTo = as.Of[as.Node](as.IRI("https://example.org/alice"))
	note.To = as.Of[as.Node](as.IRI(as.Public))
	note.ContentMap = as.Of(as.LangMap{"nl": "Hallo", "en": "Hello"})

	fmt.Println(string(as.Marshal(note)))

	// Output:
	// {"@context":"https://www.w3.org/ns/activitystreams","id":"https://example.org/notes/1","type":"Note","attributedTo":"https://example.org/alice","contentMap":{"en":"Hello","nl":"Hallo"},"to":"https://www.w3.org/ns/activitystreams#Public"}
}

func ExampleNewCodec() {
	c := as.NewCodec(
		as.WithPreserveUnknown(false),
		as.WithKeepEmpty(true),
	)

	n, err := c.Unmarshal([]byte(`{"type":"Person","name":"Alice","ext:rank":3,"streams":[]}`))
	if err != nil {
		panic(err)
	}

	fmt.Println(string(c.Marshal(n)))

	// Output:
	// {"type":"Person","name":"Alice"}
}
