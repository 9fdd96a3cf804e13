// Package storage adapts caller accessors into the storage capability that
// iterators and ranges dereference through.
//
// What:
//
//   - Proxy[T] holds an optional Accessor[T] (grid.Index → T) by value.
//     Access returns exactly the accessor's result.
//   - ConstProxy[E] wraps a Proxy[*E] and republishes a read-only E, so
//     mutable storage can be exposed without re-implementing access.
//   - Reader[T] is the compile-time capability both proxies satisfy.
//
// Why:
//
//   - Proxies are copied into every iterator and range; they are one func
//     value wide and never allocate on copy.
//   - The zero Proxy is useful (default-constructed iterators and ranges)
//     and fails deterministically with ErrMissingAccessor on access.
//
// Errors:
//
//   - ErrMissingAccessor: the proxy was never given an accessor.
//   - ErrNilReference: a ConstProxy's inner accessor returned a nil pointer.
package storage
