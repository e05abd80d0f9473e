package hash

import (
	"cmp"
	"hash/crc32"
	"reflect"
)

// sumReflected - Hashes keys whose type is a named type over one of the ordered basic kinds
func sumReflected[K cmp.Ordered](key K) uint64 {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return uint64(crc32.ChecksumIEEE([]byte(v.String())))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return abs(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return floatBits(v.Float())
	}

	return 0
}
