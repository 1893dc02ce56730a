package handlers

import (
	"github.com/cespare/xxhash/v2"
)

func hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// PartitionIndex maps a partition key onto one of numPartitions slots.
// The same key always maps to the same slot.
func PartitionIndex(key string, numPartitions int) int {
	switch numPartitions {
	case 0:
		panic("number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(key) % uint64(numPartitions))
	}
}
