// Package dirty provides an in-process stand-in for the host's
// dirty-marking primitive.
//
// # Overview
//
// In production the host owns replication bookkeeping and schema.Notifier
// forwards to it. Tracker implements the same schema.StateMarker contract
// and simply records what was marked, so the notify path can be exercised
// without a running host (tests, schemactl).
//
// # Usage
//
//	tracker := dirty.NewTracker(0)
//	n := schema.NewNotifier(tracker)
//	n.NotifyField(obj, field)
//
//	tracker.Count(obj.Handle()) // number of marks against obj
//	tracker.Ranges(obj.Handle()) // coalesced byte ranges
//
// # Granularity
//
// Marks are widened to the tracker's granularity before coalescing. With the
// default granularity of 1 every offset is its own byte. A granularity of 8
// mimics hosts that track changes per 8-byte slot:
//
//	Marks at [0x10, 0x14, 0x30] → Ranges: [0x10-0x18, 0x30-0x38]
//
// # Thread Safety
//
// Tracker instances are not thread-safe, matching the host's single-thread
// replication contract.
package dirty
