/*
Package merklebatch amortizes one expensive digital signature across a batch
of messages. The messages are hashed into the leaves of a binary hash tree,
the single root digest is handed to an external signature scheme, and every
message receives a compact inclusion proof (its authentication path) that,
together with the shared signature, lets a verifier confirm the message was
part of the signed batch.

For a batch of N messages the amortized per-message overhead is
sig_bytes/N + ceil(log2(N)) * hash_len, instead of one full signature per
message.

The signature scheme is pluggable behind the Signer interface and the hash
function behind crypto.Hash; see the blssig, ed25519sig and digest
subpackages.
*/
package merklebatch
