// Package rscodec implements Reed-Solomon error-and-erasure correction over
// GF(2^m) for configurable symbol widths.
//
// Codec is the 8-bit string façade, with three selectable implementations:
// a fixed (255,223) CCSDS table set shared by every instance ("char" variant, CCSDS
// parameter tuple), that same fixed code wrapped with the CCSDS dual-basis
// serial-interface remap ("ccsds" variant), and a general per-instance
// 8-bit build for any other parameter set ("char" variant, non-CCSDS
// tuple). IntegerCodec generalises the same machinery to symbols up to 16
// bits wide.
//
// Codec also exposes a column-major chunk driver (EncodeChunks /
// DecodeChunks) for batches of equal-length byte strings, and an
// incremental parity updater (UpdateChunk) that exploits the linearity of
// Reed-Solomon encoding to recompute a single parity position from a data
// delta without re-encoding the whole row. IntegerCodec offers only Encode
// and Decode.
//
// Every type here is immutable after construction and safe for concurrent
// use: tables are built once and never mutated, and each encode/decode call
// is a pure function of its receiver and arguments.
package rscodec
