// Package vulcan is a utility library bundling a leveled logger,
// composable function wrappers, and a JSON key/value cache.
//
// The logger annotates every record with the file and line of the
// call site and can duplicate output to a file:
//
//	log, _ := vulcan.NewLogger("worker")
//	log.Info("started")
//
// Wrappers decorate a function with logging, retries, rate limiting,
// environment gating, and metrics. They compose with Chain, outermost
// first:
//
//	fn := vulcan.Wrap1("fetch", fetch,
//		vulcan.Log[Result](),
//		vulcan.Retry[Result](3, time.Second),
//	)
//	result, err := fn(ctx, id)
//
// The cache stores JSON-encoded values in Redis or in process memory:
//
//	c, err := vulcan.NewCache()
//	err = c.Set(ctx, "user:1", user, vulcan.WithTTL(time.Hour))
package vulcan
