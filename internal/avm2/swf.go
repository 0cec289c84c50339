package avm2

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

const tagCodeDoABC = 82

// LocateDoABC scans the SWF tag stream in client and returns the raw ABC
// file bytes from the first DoABC tag. Compressed ("CWS") signatures are
// inflated transparently; the uncompressed ("FWS") signature is read
// directly. "ZWS" (LZMA-compressed, SWF 13+) is rejected — the game
// client this proxy targets predates it and no LZMA decoder exists
// anywhere in the pack to justify pulling one in for a format this proxy
// never needs to read.
func LocateDoABC(client []byte) ([]byte, error) {
	body, err := swfBody(client)
	if err != nil {
		return nil, err
	}

	body, err = skipRect(body)
	if err != nil {
		return nil, err
	}
	if len(body) < 4 {
		return nil, errInsufficientBytes(4, len(body))
	}
	body = body[4:] // frame rate (2) + frame count (2)

	for len(body) >= 2 {
		header := binary.LittleEndian.Uint16(body[:2])
		body = body[2:]
		tagType := header >> 6
		tagLen := int(header & 0x3f)

		if tagLen == 0x3f {
			if len(body) < 4 {
				return nil, errInsufficientBytes(4, len(body))
			}
			tagLen = int(binary.LittleEndian.Uint32(body[:4]))
			body = body[4:]
		}

		if len(body) < tagLen {
			return nil, errInsufficientBytes(tagLen, len(body))
		}
		payload := body[:tagLen]
		body = body[tagLen:]

		if tagType == tagCodeDoABC {
			return stripDoABCHeader(payload)
		}
	}

	return nil, ErrNoBytecodeFound
}

// swfBody validates the 3-byte signature + version + file length header
// and returns everything after it, inflating it first if the signature
// says it's zlib-compressed.
func swfBody(client []byte) ([]byte, error) {
	if len(client) < 8 {
		return nil, errInsufficientBytes(8, len(client))
	}
	sig := string(client[0:3])
	rest := client[8:]

	switch sig {
	case "FWS":
		return rest, nil
	case "CWS":
		zr, err := zlib.NewReader(bytes.NewReader(rest))
		if err != nil {
			return nil, fmt.Errorf("avm2: inflate SWF body: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("avm2: inflate SWF body: %w", err)
		}
		return out, nil
	case "ZWS":
		return nil, fmt.Errorf("avm2: LZMA-compressed SWF (ZWS) not supported")
	default:
		return nil, fmt.Errorf("avm2: not an SWF file (bad signature %q)", sig)
	}
}

// skipRect discards the bit-packed RECT (frame size) at the start of the
// SWF body: a 5-bit field count Nbits, followed by 4*Nbits bits (Xmin,
// Xmax, Ymin, Ymax), byte-aligned at the end.
func skipRect(body []byte) ([]byte, error) {
	if len(body) < 1 {
		return nil, errInsufficientBytes(1, 0)
	}
	nbits := int(body[0] >> 3)
	totalBits := 5 + 4*nbits
	totalBytes := (totalBits + 7) / 8
	if len(body) < totalBytes {
		return nil, errInsufficientBytes(totalBytes, len(body))
	}
	return body[totalBytes:], nil
}

// stripDoABCHeader removes the DoABC tag's own 4-byte flags word and
// null-terminated name string, leaving the raw ABC file bytes that
// ParseABC expects.
func stripDoABCHeader(payload []byte) ([]byte, error) {
	if len(payload) < 4 {
		return nil, errInsufficientBytes(4, len(payload))
	}
	rest := payload[4:]
	nul := bytes.IndexByte(rest, 0)
	if nul < 0 {
		return nil, fmt.Errorf("avm2: DoABC tag missing name terminator")
	}
	return rest[nul+1:], nil
}
