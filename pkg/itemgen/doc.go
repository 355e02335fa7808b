// Package itemgen generates random datasets for sortbench.
//
// Item Format:
//
//   - Letter: one of 'A'..'Z', uniformly distributed
//   - Number: 0..99, uniformly distributed, zero padded to two digits
//   - Total: 3 characters, e.g. "Q07"
//
// Generators are seeded explicitly so a dataset can be reproduced from
// the seed recorded in a JSON or YAML report. Seed 0 asks for a random seed.
package itemgen
