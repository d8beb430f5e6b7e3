// Package password hashes and verifies user passwords with argon2id.
//
// Digests are emitted in PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash) so parameters travel with the
// digest and [Hasher.NeedsUpgrade] can detect records hashed under weaker
// settings. Verification parses the parameters out of the stored digest, so
// a hasher configured with stronger settings still verifies old records.
//
// The reference design this site grew out of digested passwords with a
// single unsalted sha256 pass. That is a known weakness, not a contract;
// this package deliberately replaces it with a salted memory-hard hash.
package password
