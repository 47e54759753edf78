// Package blog is a small publishing domain used to demonstrate the
// generator end to end: mark the value types, declare the factory
// interface, run `dispatcher-generator generate`, and register the
// generated dispatcher with a Serializer.
package blog

import "time"

// Post is a published article.
//
//adapter:value
type Post struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Author   string    `json:"author"`
	Publish  time.Time `json:"publish"`
	Comments []Comment `json:"comments,omitempty"`
}

// Comment is reader feedback attached to a post.
//
//adapter:value
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Pair is a generic key/value record, serialized through the type
// arguments carried by the incoming request.
//
//adapter:value
type Pair[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// draft is an unpublished post. It stays package-private, so only
// dispatchers declared in this package can route to it.
//
//adapter:value
type draft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
