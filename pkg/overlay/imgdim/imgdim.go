// ABOUTME: Image header probing (PNG/JPEG/GIF/WebP) for placement sizing
// ABOUTME: Reads pixel dimensions without decoding and fits them into cell boxes

package imgdim

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/ueberlay/pkg/overlay"
)

// headerBudget is how much of a file Probe reads. JPEG SOF markers can sit
// behind EXIF blobs, so this is generous.
const headerBudget = 256 * 1024

// cellAspect approximates a terminal cell as twice as tall as wide.
const cellAspect = 2

// Probe extracts pixel width and height from image header bytes. It never
// decodes pixel data. Unrecognized or truncated input is an error.
func Probe(data []byte) (width, height int, err error) {
	switch {
	case len(data) < 12:
		return 0, 0, fmt.Errorf("imgdim: header too short (%d bytes)", len(data))
	case data[0] == 0x89 && string(data[1:4]) == "PNG":
		return probePNG(data)
	case data[0] == 0xFF && data[1] == 0xD8:
		return probeJPEG(data)
	case string(data[0:3]) == "GIF":
		return probeGIF(data)
	case string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return probeWebP(data)
	default:
		return 0, 0, fmt.Errorf("imgdim: unrecognized image format")
	}
}

// ProbeFile probes the header of the file at path.
func ProbeFile(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("imgdim: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, headerBudget))
	if err != nil {
		return 0, 0, fmt.Errorf("imgdim: reading %s: %w", path, err)
	}
	return Probe(data)
}

// CellsFor fits an image of the given pixel dimensions into a box of at most
// maxCols by maxRows terminal cells, preserving aspect ratio under the 1:2
// cell shape. The result is at least 1x1 for any positive input.
func CellsFor(pxWidth, pxHeight, maxCols, maxRows int) (overlay.Size, error) {
	if pxWidth <= 0 || pxHeight <= 0 {
		return overlay.Size{}, fmt.Errorf("imgdim: non-positive pixel size %dx%d", pxWidth, pxHeight)
	}
	if maxCols <= 0 || maxRows <= 0 {
		return overlay.Size{}, fmt.Errorf("imgdim: non-positive cell box %dx%d", maxCols, maxRows)
	}

	cols := maxCols
	rows := cols * pxHeight / (pxWidth * cellAspect)
	if rows > maxRows {
		rows = maxRows
		cols = rows * pxWidth * cellAspect / pxHeight
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols > maxCols {
		cols = maxCols
	}
	return overlay.Size{Width: cols, Height: rows}, nil
}

// probePNG reads the IHDR chunk: width at byte 16, height at 20, big-endian.
func probePNG(data []byte) (int, int, error) {
	if len(data) < 24 {
		return 0, 0, fmt.Errorf("imgdim: PNG header truncated")
	}
	w := binary.BigEndian.Uint32(data[16:20])
	h := binary.BigEndian.Uint32(data[20:24])
	return int(w), int(h), nil
}

// probeJPEG scans segment markers for a start-of-frame (SOF0..SOF2).
func probeJPEG(data []byte) (int, int, error) {
	i := 2
	for i+3 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker >= 0xC0 && marker <= 0xC2 {
			if i+9 >= len(data) {
				return 0, 0, fmt.Errorf("imgdim: JPEG SOF truncated")
			}
			h := binary.BigEndian.Uint16(data[i+5 : i+7])
			w := binary.BigEndian.Uint16(data[i+7 : i+9])
			return int(w), int(h), nil
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 {
			break
		}
		i += 2 + segLen
	}
	return 0, 0, fmt.Errorf("imgdim: JPEG SOF marker not found")
}

// probeGIF reads the logical screen descriptor, little-endian at bytes 6-9.
func probeGIF(data []byte) (int, int, error) {
	w := binary.LittleEndian.Uint16(data[6:8])
	h := binary.LittleEndian.Uint16(data[8:10])
	return int(w), int(h), nil
}

// probeWebP handles the VP8, VP8L and VP8X chunk layouts.
func probeWebP(data []byte) (int, int, error) {
	if len(data) < 16 {
		return 0, 0, fmt.Errorf("imgdim: WebP header truncated")
	}
	switch string(data[12:16]) {
	case "VP8 ":
		if len(data) < 30 {
			return 0, 0, fmt.Errorf("imgdim: WebP VP8 header truncated")
		}
		w := int(binary.LittleEndian.Uint16(data[26:28])) & 0x3FFF
		h := int(binary.LittleEndian.Uint16(data[28:30])) & 0x3FFF
		return w, h, nil
	case "VP8L":
		if len(data) < 25 {
			return 0, 0, fmt.Errorf("imgdim: WebP VP8L header truncated")
		}
		bits := binary.LittleEndian.Uint32(data[21:25])
		return int(bits&0x3FFF) + 1, int((bits>>14)&0x3FFF) + 1, nil
	case "VP8X":
		if len(data) < 30 {
			return 0, 0, fmt.Errorf("imgdim: WebP VP8X header truncated")
		}
		w := int(data[24]) | int(data[25])<<8 | int(data[26])<<16
		h := int(data[27]) | int(data[28])<<8 | int(data[29])<<16
		return w + 1, h + 1, nil
	default:
		return 0, 0, fmt.Errorf("imgdim: unknown WebP chunk %q", data[12:16])
	}
}
