// Package token signs and verifies the session token: a compact HS256 JWS
// whose payload embeds the user and an explicit expiry in unix millis.
//
// The expiry is stored twice — as the registered exp claim and as the
// in-payload expires field. The registered claim is informational; Decode
// verifies the signature and schema only and leaves the wall-clock expiry
// check to the session manager, which treats the payload field as
// authoritative.
package token
