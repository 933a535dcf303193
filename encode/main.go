package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"log"
	"unsafe"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

//export FreeMem
func FreeMem(ptr unsafe.Pointer) {
	C.free(ptr)
}

//export DownsampledSize
func DownsampledSize(width, height, pixelSize C.int, outWidth, outHeight *C.int) {
	w, h := gridSize(int(width), int(height), int(pixelSize))
	*outWidth = C.int(w)
	*outHeight = C.int(h)
}

//export RenderPixelArtPNG
func RenderPixelArtPNG(
	inputImageBytes unsafe.Pointer, inputImageLen C.int,
	style *C.char, pixelSize C.int,
	outputPNG **C.char, outputPNGLen *C.int,
) *C.char {
	goInputBytes := C.GoBytes(inputImageBytes, inputImageLen)

	pngBytes, err := renderCore(goInputBytes, C.GoString(style), int(pixelSize), false)
	if err != nil {
		return C.CString(fmt.Sprintf("RenderPixelArt: %v", err))
	}

	*outputPNG = (*C.char)(C.CBytes(pngBytes))
	*outputPNGLen = C.int(len(pngBytes))
	return nil
}

//export RenderComparisonPNG
func RenderComparisonPNG(
	inputImageBytes unsafe.Pointer, inputImageLen C.int,
	style *C.char, pixelSize C.int,
	outputPNG **C.char, outputPNGLen *C.int,
) *C.char {
	goInputBytes := C.GoBytes(inputImageBytes, inputImageLen)

	pngBytes, err := renderCore(goInputBytes, C.GoString(style), int(pixelSize), true)
	if err != nil {
		return C.CString(fmt.Sprintf("RenderComparison: %v", err))
	}

	*outputPNG = (*C.char)(C.CBytes(pngBytes))
	*outputPNGLen = C.int(len(pngBytes))
	return nil
}

func main() {}
