package queries_test

// mockAggregateTracker satisfies the repositories' tracker dependency; the
// query suites only need the repositories for seeding data.
type mockAggregateTracker struct{}

func (*mockAggregateTracker) TrackAggregate(_ any, _ any) {}
