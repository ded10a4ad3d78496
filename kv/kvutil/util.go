package kvutil

import "fmt"

// NextPrefix returns a prefix that is lexicographically larger than the input prefix
func NextPrefix(prefix []byte) []byte {
	buf := make([]byte, len(prefix))
	copy(buf, prefix)
	var i int
	for i = len(prefix) - 1; i >= 0; i-- {
		buf[i]++
		if buf[i] != 0 {
			break
		}
	}
	if i == -1 {
		buf = make([]byte, 0)
	}
	return buf
}

// CollectionPrefix returns the key prefix shared by every document in the named collection
func CollectionPrefix(collection string) []byte {
	return []byte(fmt.Sprintf("collections.%s.", collection))
}

// DocumentKey returns the storage key of the document with the given id in the named collection
func DocumentKey(collection, id string) []byte {
	return append(CollectionPrefix(collection), []byte(id)...)
}
