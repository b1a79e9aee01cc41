// Package design resolves creative prompts into reproducible mascot design
// specifications drawn from a closed categorical vocabulary.
//
// The vocabulary lives in two YAML documents: an aesthetic taxonomy of
// design dimensions and an intentionality catalogue of emotional archetypes.
// Both are loaded once, validated eagerly, and immutable afterwards, so every
// resolution step is a pure read over shared tables and safe for concurrent
// callers without locks.
package design
