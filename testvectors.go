package blake512

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector represents a single BLAKE known-answer test case.
type TestVector struct {
	Name     string `json:"name"`
	HashSize int    `json:"hash_size"`           // 384 or 512
	Input    string `json:"input"`               // UTF-8 input
	InputHex string `json:"input_hex,omitempty"` // Alternative hex-encoded input
	Salt     string `json:"salt,omitempty"`      // Hex-encoded 32-byte salt
	Expected string `json:"expected"`            // Hex-encoded expected digest
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
//
// This is used internally for testing but exported for potential external validation tools.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetInput returns the decoded input bytes for a test vector.
// If InputHex is set, it decodes from hex, otherwise uses Input as UTF-8.
func (tv *TestVector) GetInput() ([]byte, error) {
	if tv.InputHex != "" {
		input, err := hex.DecodeString(tv.InputHex)
		if err != nil {
			return nil, fmt.Errorf("invalid input hex: %w", err)
		}
		return input, nil
	}
	return []byte(tv.Input), nil
}

// GetSalt returns the decoded salt, or nil when the vector is unsalted.
func (tv *TestVector) GetSalt() ([]byte, error) {
	if tv.Salt == "" {
		return nil, nil
	}
	salt, err := hex.DecodeString(tv.Salt)
	if err != nil {
		return nil, fmt.Errorf("invalid salt hex: %w", err)
	}
	return salt, nil
}

// GetExpected returns the decoded expected digest bytes.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected hash: %w", err)
	}
	if want := tv.HashSize / 8; len(expected) != want {
		return nil, fmt.Errorf("expected hash must be %d bytes, got %d", want, len(expected))
	}
	return expected, nil
}

// NewDigest returns a Digest configured for this test vector.
func (tv *TestVector) NewDigest() (*Digest, error) {
	salt, err := tv.GetSalt()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(Config{HashSize: tv.HashSize, Salt: salt})
}
