package bloomset

import (
	"crypto/md5"
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// digestData returns the MD5 digest of data.
func digestData(data []byte) [md5.Size]byte {
	return md5.Sum(data)
}

// digestString returns the MD5 digest of the UTF-8 bytes of s.
func digestString(s string) [md5.Size]byte {
	return md5.Sum([]byte(s))
}

// deriveIndices fills dst with len(dst) bit positions in [0, capacityBits)
// taken from digest.
//
// Digest bytes are dealt round-robin into len(dst) accumulators, each folding
// its bytes big-endian as acc = acc*256 + int8(b) in wrapping int32
// arithmetic. Accumulator i is then offset by i*capacityBits/k so the k
// positions start out in different regions of the array, and reduced with a
// floor modulus.
func deriveIndices(digest [md5.Size]byte, capacityBits uint64, dst []uint32) {
	k := len(dst)
	if k == 0 {
		return
	}

	var acc [md5.Size]int32 // k may exceed the digest length; extra slots stay zero
	for p, b := range digest {
		i := p % k
		acc[i] = acc[i]*256 + int32(int8(b))
	}

	m := int64(capacityBits)
	for i := range dst {
		var a int32
		if i < len(acc) {
			a = acc[i]
		}
		shift := int32(int64(i) * m / int64(k))
		dst[i] = uint32(floorMod(int64(a+shift), m))
	}
}

// floorMod returns x mod m with the sign of m (always non-negative for m > 0).
func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// structuralHash hashes a set's configuration and bit words with xxh3.
func structuralHash(capacityBits uint64, k uint32, words []uint64) uint64 {
	h := xxh3.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], capacityBits)
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint32(buf[:4], k)
	_, _ = h.Write(buf[:4])

	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
