package xli

// XLI format constants.
const (
	HeaderSize = 8  // Chunk header: int32 LE payload size, 2 reserved bytes, int16 LE delta seed.
	ChunkBits  = 10 // Code width used for chunk payloads.
	MinBits    = 10 // Smallest supported code width.
	MaxBits    = 16 // Largest supported code width.

	seedCodes = 256 // Single-byte dictionary entries present after reset.
	deltaBias = 64  // Bias applied when updating the running delta seed.
)
