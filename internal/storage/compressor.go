package storage

import (
	"fmt"
	"ntd/internal/storage/interfaces"
	"ntd/internal/structures"

	"github.com/klauspost/compress/zstd"
)

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	return z.decoder.DecodeAll(val, nil)
}

func (z *ZstdCompression) Close() {
	z.encoder.Close()
	z.decoder.Close()
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// NewCompressor picks zstd or passthrough based on config. Passthrough keeps
// namespace files inspectable as plain JSON during development.
func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	if !conf.Storage.Compression {
		return &identityCompression{}, nil
	}
	return NewZstdCompressor()
}

type identityCompression struct{}

func (i *identityCompression) Compress(val []byte) ([]byte, error) {
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (i *identityCompression) Decompress(val []byte) ([]byte, error) {
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (i *identityCompression) Close() {}
