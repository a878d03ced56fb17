/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing journey sets.

It allows developers to define journeys using a type-safe, fluent builder pattern
instead of relying on external YAML or JSON documents. This is particularly useful for
dynamic set generation, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/rinasm/journeymap"
		"github.com/rinasm/journeymap/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Journey("checkout").
			Name("Checkout").
			Confidence(92).
			Step("Add to cart").
			Step("Proceed to payment")

		b.Journey("login").
			Name("User Login").
			Confidence(75.5).
			Input("Enter username", "text").
			Input("Enter password", "password").
			Step("Click submit")

		// The resulting source plugs straight into the engine.
		engine, _ := journeymap.New(journeymap.WithSource(b.Source()))
		// ... pass engine to your transport of choice
		_ = engine
	}
*/
package dsl
