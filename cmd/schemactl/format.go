package main

import "fmt"

func hex32(v uint32) string { return fmt.Sprintf("0x%08X", v) }

func hex64(v uint64) string { return fmt.Sprintf("0x%016X", v) }

func hexOffset(v int32) string {
	if v < 0 {
		return fmt.Sprintf("-0x%X", -int64(v))
	}
	return fmt.Sprintf("0x%X", v)
}
