package adapter

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gowebpki/jcs"
)

// JSON wraps encoding/json so decoders can be mocked
//
//go:generate mockgen -source=codec.go -destination=../mocks/codec.go -package=mocks -mock_names=JSON=MockJSON,JCS=MockJCS,Base64=MockBase64
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// JCS canonicalizes JSON documents (RFC 8785)
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

// Base64 decodes inline data URIs found in token metadata
type Base64 interface {
	Encode(data []byte) string
	Decode(data string) ([]byte, error)
}

type stdJSON struct{}

// NewJSON returns the encoding/json codec
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

type canonicalJSON struct{}

// NewJCS returns the RFC 8785 canonicalizer
func NewJCS() JCS {
	return canonicalJSON{}
}

func (canonicalJSON) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

type stdBase64 struct{}

// NewBase64 returns a codec that reads padded and unpadded input
func NewBase64() Base64 {
	return stdBase64{}
}

func (stdBase64) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (stdBase64) Decode(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
