// Package launch turns raw API records into display-ready launches.
//
// Enrich is pure and total: a missing date becomes "Date TBD", a missing
// rocket or launchpad becomes "Unknown Rocket" / "Unknown Launchpad", and an
// empty payload list becomes "No payload info". Status is never stored; it
// is recomputed from the upcoming and success flags whenever it is read.
//
// ResolveImage picks a mission image. The list view walks patch-small,
// patch-large, flickr-small[0], flickr-original[0]; the detail view walks
// patch-large, patch-small, flickr-original[0], flickr-small[0].
//
// Fetcher joins the two halves: one query through a Querier, then every
// record enriched against a single timestamp, order untouched.
package launch
