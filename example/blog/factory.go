package blog

import "dispatcher-generator/adapter"

// BlogFactory routes type requests to the adapters declared in this
// package. The generator fills in the dispatch body.
//
//adapter:factory nullsafe
type BlogFactory interface {
	adapter.Factory
}
