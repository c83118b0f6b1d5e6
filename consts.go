package bigint

const (
	limbBits = 32
	limbBase = 1 << limbBits
	limbMax  = limbBase - 1
	limbTop  = 1 << (limbBits - 1)

	// decChunk decimal digits always fit in one limb, so a chunk can be folded
	// into a magnitude with a single multiply-add pass.
	decChunk     = 9
	decChunkBase = 1000000000

	maxInt64  = 1<<63 - 1
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

// pow10 holds 10^n for every chunk length.
var pow10 = [decChunk + 1]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}
