// Package verify cross-checks the three decode implementations and carries
// the golden-hash oracle used to pin decoder behavior down over time.
//
// The decode algorithm exists three times on purpose: the reference codec
// (blockdialect), the register-level hardware model (hwdecoder) and a
// firmware-style byte walker kept in this package. CrossCheck runs one
// block through all three and demands byte-identical output; a disagreement
// is a MismatchError carrying everything needed to reproduce it. This is a
// test-time failure, never a production error path.
//
// The hash oracle is deliberately primitive: a 32-bit additive sum of the
// sign-extended elements. It is cheap enough for a bare-metal target and
// sensitive enough to catch wrong, missing or corrupted elements, and it is
// what golden files record. Fingerprint supplements it with a fast 64-bit
// content hash for corpus-scale comparisons.
package verify
