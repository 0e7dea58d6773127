// Package csync provides a small thread-safe map used where component
// state is touched from more than one goroutine, such as the engine node
// table and widget render caches.
//
//	cache := csync.NewMap[viewer.NodeID, string]()
//	cache.Set(id, rendered)
//	if view, ok := cache.Get(id); ok {
//		// use view
//	}
package csync
