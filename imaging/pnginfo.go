package imaging

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zlib"
)

// pngSignature is the fixed 8-byte header every PNG starts with
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// parametersKey is the bare-text metadata key Stable Diffusion front-ends
// write their generation settings under; its value is rendered without a
// key prefix.
const parametersKey = "parameters"

// maxTextChunkSize caps how much text a single chunk may carry before the
// scan treats the file as malformed instead of allocating unboundedly.
const maxTextChunkSize = 16 << 20

// ReadPNGMetadata scans the PNG chunk stream in r and collects the textual
// metadata chunks (tEXt, zTXt, iTXt) into an ordered mapping: fields keep
// first-occurrence order and a keyword repeated across chunks overwrites
// the earlier value. Pixel data is skipped, never decoded, so text chunks
// are readable even when image decoding would be expensive or the pixel
// stream is unusual.
func ReadPNGMetadata(r io.Reader) (Metadata, error) {
	br := bufio.NewReader(r)

	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(br, sig); err != nil {
		return nil, fmt.Errorf("failed to read PNG signature: %w", err)
	}
	if !bytes.Equal(sig, pngSignature) {
		return nil, fmt.Errorf("not a PNG file")
	}

	var meta Metadata
	var header [8]byte
	for {
		if _, err := io.ReadFull(br, header[:]); err != nil {
			return nil, fmt.Errorf("truncated PNG: %w", err)
		}
		length := binary.BigEndian.Uint32(header[0:4])
		chunkType := string(header[4:8])

		if chunkType == "IEND" {
			break
		}

		switch chunkType {
		case "tEXt", "zTXt", "iTXt":
			if length > maxTextChunkSize {
				return nil, fmt.Errorf("%s chunk too large (%d bytes)", chunkType, length)
			}
			data := make([]byte, length)
			if _, err := io.ReadFull(br, data); err != nil {
				return nil, fmt.Errorf("truncated %s chunk: %w", chunkType, err)
			}
			field, err := parseTextChunk(chunkType, data)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s chunk: %w", chunkType, err)
			}
			meta = meta.set(field.Key, field.Value)
		default:
			if _, err := io.CopyN(io.Discard, br, int64(length)); err != nil {
				return nil, fmt.Errorf("truncated %s chunk: %w", chunkType, err)
			}
		}

		// skip the 4-byte CRC; text chunks are taken as-is, unverified
		if _, err := io.CopyN(io.Discard, br, 4); err != nil {
			return nil, fmt.Errorf("truncated chunk trailer: %w", err)
		}
	}

	return meta, nil
}

// parseTextChunk decodes one tEXt, zTXt or iTXt chunk payload
func parseTextChunk(chunkType string, data []byte) (MetadataField, error) {
	keyword, rest, ok := bytes.Cut(data, []byte{0})
	if !ok {
		return MetadataField{}, fmt.Errorf("missing keyword separator")
	}

	switch chunkType {
	case "tEXt":
		return MetadataField{Key: string(keyword), Value: string(rest)}, nil

	case "zTXt":
		if len(rest) < 1 {
			return MetadataField{}, fmt.Errorf("missing compression method")
		}
		if rest[0] != 0 {
			return MetadataField{}, fmt.Errorf("unknown compression method %d", rest[0])
		}
		text, err := inflateText(rest[1:])
		if err != nil {
			return MetadataField{}, err
		}
		return MetadataField{Key: string(keyword), Value: string(text)}, nil

	case "iTXt":
		if len(rest) < 2 {
			return MetadataField{}, fmt.Errorf("missing compression fields")
		}
		compressed := rest[0] == 1
		method := rest[1]
		rest = rest[2:]

		// language tag and translated keyword, both nul-terminated
		if _, rest, ok = bytes.Cut(rest, []byte{0}); !ok {
			return MetadataField{}, fmt.Errorf("missing language tag separator")
		}
		if _, rest, ok = bytes.Cut(rest, []byte{0}); !ok {
			return MetadataField{}, fmt.Errorf("missing translated keyword separator")
		}

		text := rest
		if compressed {
			if method != 0 {
				return MetadataField{}, fmt.Errorf("unknown compression method %d", method)
			}
			inflated, err := inflateText(text)
			if err != nil {
				return MetadataField{}, err
			}
			text = inflated
		}
		return MetadataField{Key: string(keyword), Value: string(text)}, nil
	}

	return MetadataField{}, fmt.Errorf("not a text chunk: %s", chunkType)
}

// inflateText decompresses a zlib-compressed text payload
func inflateText(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open compressed text: %w", err)
	}
	defer func() { _ = zr.Close() }()

	text, err := io.ReadAll(io.LimitReader(zr, maxTextChunkSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress text: %w", err)
	}
	if len(text) > maxTextChunkSize {
		return nil, fmt.Errorf("decompressed text too large")
	}
	return text, nil
}

// set updates the value for key in place, appending a new field when the
// key is not present yet. A repeated keyword keeps its first position and
// carries the last value.
func (m Metadata) set(key, value string) Metadata {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, MetadataField{Key: key, Value: value})
}

// Comment renders the metadata for embedding in the destination's comment
// field. The parameters key carries pre-formatted free text and is emitted
// bare; every other field becomes a "key: value" line. Lines keep the
// field order and trailing whitespace is trimmed.
func (m Metadata) Comment() string {
	var b strings.Builder
	for _, f := range m {
		if f.Key == parametersKey {
			b.WriteString(f.Value)
		} else {
			b.WriteString(f.Key)
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
