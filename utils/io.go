package utils

import (
	"math"
	"os"
	"unsafe"

	"github.com/rs/zerolog/log"
)

func init() {
	checkCompiler()
}

// Enforces a 64bit machine due to assumptions about size of ints.
func checkCompiler() {
	myInt := int(math.MaxInt64) // Shouldn't compile on a 32 bit system.
	myInt64 := int64(math.MaxInt64)
	if uint64(myInt) != uint64(myInt64) {
		panic("Must be on 64 bit system.")
	}
}

func OpenFile(path string) (file *os.File) {
	file, err := os.Open(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to open file: " + path)
	}
	return file
}

func CreateFile(path string) (file *os.File) {
	file, err := os.Create(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to create file: " + path)
	}
	return file
}

// ASCII digits only, no validation; fine for trusted edge list files.
func ToIntStr(buf string) (n uint32) {
	for i := 0; i < len(buf); i++ {
		n = n*10 + uint32(buf[i]-'0')
	}
	return
}

const SPACE_MASK = 1<<9 | 1<<10 | 1<<11 | 1<<12 | 1<<13 | 1<<32

func isByteSpace(b byte) bool {
	return ((SPACE_MASK & (1 << b)) != 0)
}

// ASCII only, no re-allocation. Assumes fieldBuff is large enough. Points to entries in byteBuff.
// Returns the number of fields found.
func FastFields(fieldBuff []string, byteBuff []byte) (fieldIndex int) {
	i := 0
	// Skip spaces in the front of the input.
	for i < len(byteBuff) && isByteSpace(byteBuff[i]) {
		i++
	}
	fieldStart := i
	for i < len(byteBuff) {
		if !isByteSpace(byteBuff[i]) {
			i++
			continue
		}
		b := byteBuff[fieldStart:i]
		fieldBuff[fieldIndex] = *(*string)(Noescape(unsafe.Pointer(&b)))
		fieldIndex++

		i++
		// Skip spaces in between fields.
		for i < len(byteBuff) && isByteSpace(byteBuff[i]) {
			i++
		}
		fieldStart = i
	}
	if fieldStart < len(byteBuff) { // Last field might end at EOF.
		b := byteBuff[fieldStart:]
		fieldBuff[fieldIndex] = *(*string)(Noescape(unsafe.Pointer(&b)))
		fieldIndex++
	}
	return fieldIndex
}
