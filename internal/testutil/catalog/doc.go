// Package catalog provides test infrastructure for building catalogs in tests.
// It offers a fluent API for declaring categories and items, validates the
// result, and ships predefined fixtures for common scenarios.
//
// Example usage:
//
//	cat := catalog.NewBuilder(t).
//		WithFixture(catalog.FixtureMinimal).
//		WithItem(99, "credit", "Debt Tracker", "debt", "loan").
//		Build()
//
//	results := ranking.New().Rank(cat, ranking.Query{Text: "debt"})
package catalog
