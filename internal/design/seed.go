package design

import "hash/fnv"

// DeriveSeed computes a reproducibility fingerprint in [0, 100) from the
// prompt's exact character content. FNV-1a over the UTF-8 bytes keeps the
// value stable across runs and processes; nothing downstream consumes it as
// entropy, since all other resolution steps are rule-deterministic.
func DeriveSeed(prompt string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	return int(h.Sum32() % 100)
}
