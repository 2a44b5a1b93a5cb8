// Package locsync keeps a lookup cache coherent with a durable store of
// culture-specific strings.
//
// Components:
//   - KeyBuilder: derives the canonical key from (culture, resource group, name).
//   - store.Store: durable record backend (gorm-backed table, snapshot file).
//   - cache.Backend: lookup cache (in-process memory/bigcache/ristretto, or
//     redis when multiple replicas must share cache state).
//   - Crud: write-through orchestration. Every mutation computes the key,
//     applies the store mutation, and only on store success mirrors it into
//     the cache. The store is authoritative; the cache follows best-effort.
//   - Localizer: read facade with bulk warm-up. A cache miss returns the
//     lookup name itself, never an error.
//
// Coherence is deliberately weak: between the store write and the cache write
// a concurrent reader may observe the old cached value, and two concurrent
// writers to the same key resolve last-writer-wins. There is no lock or
// transaction spanning both backends.
package locsync
