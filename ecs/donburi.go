// Package ecs provides ECS adapters for overlap.
package ecs

import (
	"github.com/tilegarden/overlap"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ColliderData tags an entity as collision-checked. Layer and Scans are bit
// sets: a pair is tested when either side's Scans intersects the other
// side's Layer. Zero Scans means the entity is passive: it can be hit but
// initiates no checks.
type ColliderData struct {
	Shape overlap.Collidable
	Layer uint8
	Scans uint8
}

// Collider is the Donburi component type for ColliderData.
var Collider = donburi.NewComponentType[ColliderData]()

// CollisionEvent is published for every colliding pair found by CheckPairs.
// Subscribe to CollisionEventType in your systems to receive them.
type CollisionEvent struct {
	A, B *donburi.Entry
}

// CollisionEventType is the Donburi event type for collision events.
// Consume with Subscribe and ProcessEvents.
var CollisionEventType = events.NewEventType[CollisionEvent]()

var colliderQuery = donburi.NewQuery(filter.Contains(Collider))

// CheckPairs runs the engine over every layer-compatible collider pair in
// the world and publishes a CollisionEvent for each overlapping one.
// Returns the number of events published. Events are queued; call
// CollisionEventType.ProcessEvents (or events.ProcessAllEvents) afterwards
// to deliver them.
func CheckPairs(world donburi.World, engine *overlap.Engine) int {
	var entries []*donburi.Entry
	colliderQuery.Each(world, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})

	hits := 0
	for i := 0; i < len(entries); i++ {
		a := Collider.Get(entries[i])
		for j := i + 1; j < len(entries); j++ {
			b := Collider.Get(entries[j])
			if a.Scans&b.Layer == 0 && b.Scans&a.Layer == 0 {
				continue
			}
			if engine.Check(a.Shape, b.Shape) {
				CollisionEventType.Publish(world, CollisionEvent{A: entries[i], B: entries[j]})
				hits++
			}
		}
	}
	return hits
}
