// Package cache provides a small generic LRU cache.
//
// The colour conversion graph uses it to memoise resolved conversion paths,
// which are looked up once per conversion call:
//
//	c := cache.New[string, []int](64)
//	path := c.GetOrCreate("CIE XYZ->CIE LCHab", resolve)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
