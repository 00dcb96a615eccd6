// Package state holds the view state machine shared by the fetch commands and
// the UI.
//
// # Phases
//
//	Loading ──success──→ Browsing ──Select──→ Detail
//	   │                    ↑                   │
//	   └──failure──→ Error  └───────Back────────┘
//
// BeginFetch moves any phase to Loading and returns a sequence number. Only
// the result carrying the latest number is applied by Complete; an older
// result arriving late is dropped, so two overlapping refreshes can never
// leave the screen showing the slower, staler response.
//
// A failed fetch drops the collection: the Error phase never shows launches.
// Select is accepted only while browsing and only for an id present in the
// collection. Back returns to the identical collection without fetching.
// Reset is the full reload: collection, selection and last-updated time are
// discarded and every pending fetch is invalidated.
//
// # Concurrency
//
// Machine guards its fields with a sync.RWMutex. Snapshot returns a value
// copy with the launch slice cloned, so callers may read it freely while
// fetch goroutines report results.
package state
