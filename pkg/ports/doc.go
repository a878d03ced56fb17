// Package ports defines the boundary interfaces of the journeymap
// engine: where journeys come from (JourneySource), where named journey
// sets persist (JourneyStore), and how replicas coordinate writes
// (DistributedLocker). Adapters under pkg/adapters implement them; the
// core packages never import an adapter.
package ports
