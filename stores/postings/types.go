package postings

import (
	"encoding/binary"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Ids are stored big-endian. For non-negative ids the byte order of the
// keys is then the numeric order, which keeps the values of a key sorted.
const idSize = 4

func encodeID(id int32) ([]byte, error) {
	if id < 0 {
		return nil, errors.Errorf("postings ids must be non-negative, got %d", id)
	}
	bytes := make([]byte, idSize)
	binary.BigEndian.PutUint32(bytes, uint32(id))
	return bytes, nil
}

func decodeID(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes))
}
