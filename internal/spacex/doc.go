// Package spacex provides an HTTP client for the SpaceX v4 launch API.
//
// # Overview
//
// liftoff needs exactly one endpoint: POST /v4/launches/query. The package
// builds that query, sends it, decodes the paginated envelope and hands back
// the raw launch records in the order the API returned them.
//
// # Architecture
//
//   - client.go: HTTP client, request/response handling, image probes
//   - query.go: the query body and the fixed launch query
//   - types.go: raw records mirroring the API schema
//   - errors.go: FetchError and its kinds
//
// # Client Usage
//
//	client, err := spacex.NewClient(spacex.DefaultAPIURL, 0)
//	if err != nil {
//		return err
//	}
//	launches, err := client.QueryLaunches(ctx, spacex.LaunchQuery())
//	if err != nil {
//		var fe *spacex.FetchError
//		if errors.As(err, &fe) && fe.Kind == spacex.KindHTTPStatus {
//			// fe.StatusCode holds the status
//		}
//	}
//
// # The Launch Query
//
// LaunchQuery requests an empty filter, limit 30, sorted by date_utc
// descending, and populates rocket, launchpad and payloads with narrow field
// projections. The join happens server side, so the whole batch costs one
// round trip regardless of its size.
//
// # Error Handling
//
// Every failure of QueryLaunches is a *FetchError:
//
//   - KindNetwork: the transport failed and no response arrived
//   - KindHTTPStatus: the API answered outside 2xx; StatusCode is set
//   - KindFailure: the body was malformed or the request could not be built
//
// The client never retries. Retrying is a user decision made above this
// package.
//
// # Timeouts
//
// NewClient takes an optional timeout. Zero means none: the query waits until
// the transport resolves, errors, or the caller's context is cancelled.
// Image probes always carry their own short deadline.
//
// # Populated References
//
// When a join is not applied the API returns bare id strings in place of
// rocket, launchpad and payload objects. The nested types accept both forms;
// a bare reference decodes to a value with only ID set.
package spacex
