package fixture

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
)

const (
	// BMPHeaderSize is BITMAPFILEHEADER (14) + BITMAPINFOHEADER (40)
	BMPHeaderSize = 54

	dibHeaderSize   = 40
	bmpBitsPerPixel = 24
	// 2835 pixels per meter, roughly 72 DPI
	bmpPixelsPerMeter = 2835
)

// bmpFileHeader is the 14-byte BITMAPFILEHEADER, little-endian on disk
type bmpFileHeader struct {
	Signature  [2]byte // "BM"
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32 // Offset to pixel data, always 54 here
}

// bmpInfoHeader is the 40-byte BITMAPINFOHEADER
type bmpInfoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32 // Positive height means bottom-up row order
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32 // 0 = BI_RGB (uncompressed)
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// BMPRowSize returns the byte length of one 24-bit pixel row padded to a
// 4-byte boundary.
func BMPRowSize(width int) int {
	return (width*3 + 3) &^ 3
}

// BMPFileSize returns the total on-disk size of a 24-bit BMP with the given
// dimensions.
func BMPFileSize(width, height int) int64 {
	return BMPHeaderSize + int64(BMPRowSize(width))*int64(height)
}

// writeBMPFile writes a 24-bit uncompressed BMP filled with random pixels.
// Row padding bytes are zero.
func (g *Generator) writeBMPFile(path string, width, height int) (FileInfo, error) {
	f, err := os.Create(path)
	if err != nil {
		return FileInfo{}, &IOError{Op: "create", Path: path, Err: err}
	}

	hasher := sha256.New()
	dst := io.MultiWriter(f, hasher)

	if err := writeBMPHeaders(dst, width, height); err != nil {
		return FileInfo{}, g.abortWrite(f, path, "write", err)
	}

	rowSize := BMPRowSize(width)
	pixelBytes := width * 3
	row := make([]byte, rowSize) // trailing pad bytes stay zero
	for y := 0; y < height; y++ {
		if _, err := rand.Read(row[:pixelBytes]); err != nil {
			return FileInfo{}, g.abortWrite(f, path, "randomize", err)
		}
		if _, err := dst.Write(row); err != nil {
			return FileInfo{}, g.abortWrite(f, path, "write", err)
		}
	}

	if err := f.Close(); err != nil {
		g.removePartial(path)
		return FileInfo{}, &IOError{Op: "close", Path: path, Err: err}
	}

	return FileInfo{
		Path:   path,
		Size:   BMPFileSize(width, height),
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// writeBMPHeaders writes the file and DIB headers for a 24-bit BI_RGB image
func writeBMPHeaders(w io.Writer, width, height int) error {
	imageSize := uint32(BMPRowSize(width)) * uint32(height)

	fileHeader := bmpFileHeader{
		Signature:  [2]byte{'B', 'M'},
		FileSize:   BMPHeaderSize + imageSize,
		DataOffset: BMPHeaderSize,
	}
	infoHeader := bmpInfoHeader{
		HeaderSize:      dibHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitsPerPixel:    bmpBitsPerPixel,
		ImageSize:       imageSize,
		XPixelsPerMeter: bmpPixelsPerMeter,
		YPixelsPerMeter: bmpPixelsPerMeter,
	}

	if err := binary.Write(w, binary.LittleEndian, &fileHeader); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, &infoHeader)
}
