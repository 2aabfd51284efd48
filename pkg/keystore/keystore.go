// Package keystore loads and saves EC-Schnorr key pairs as JSON files.
//
// The file format is a single object holding the hex forms of both keys:
//
//	{
//	  "private_key": "0000...0001",
//	  "public_key_hex": "0279be667e..."
//	}
//
// Loading cross-checks that the stored public key is the one derived from
// the stored private key, so a corrupted or mismatched file is rejected
// before it can be used to sign.
package keystore

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mahdiidarabi/ec-schnorr/pkg/schnorr"
)

// KeyPairParser defines the interface for parsing key pairs from various
// sources. Implement this interface to support other storage formats.
type KeyPairParser interface {
	// ParseKeyPair parses a key pair from a source and returns it.
	ParseKeyPair(source string) (*schnorr.PrivateKey, *schnorr.PublicKey, error)
}

// JSONParser parses key pairs from JSON files.
type JSONParser struct {
	PrivateKeyField string // Field name for the private key (default: "private_key")
	PublicKeyField  string // Field name for the public key (default: "public_key_hex")
}

type keyFile map[string]string

// ParseKeyPair parses a key pair from a JSON file. Hex values may carry an
// optional 0x prefix.
func (p *JSONParser) ParseKeyPair(jsonFile string) (*schnorr.PrivateKey, *schnorr.PublicKey, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer file.Close()

	var raw keyFile
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	privField := p.PrivateKeyField
	if privField == "" {
		privField = "private_key"
	}
	pubField := p.PublicKeyField
	if pubField == "" {
		pubField = "public_key_hex"
	}

	privHex, ok := raw[privField]
	if !ok {
		return nil, nil, fmt.Errorf("missing %s field", privField)
	}
	priv, err := schnorr.NewPrivateKeyFromString(trimHexPrefix(privHex))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	pubHex, ok := raw[pubField]
	if !ok {
		return nil, nil, fmt.Errorf("missing %s field", pubField)
	}
	pub, err := schnorr.NewPublicKeyFromString(trimHexPrefix(pubHex))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	derived, err := schnorr.NewPublicKeyFromPrivKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive public key: %w", err)
	}
	if !pub.Equal(derived) {
		return nil, nil, fmt.Errorf("stored public key does not match the private key")
	}

	return priv, pub, nil
}

// Load reads a key pair from a JSON file using the default field names.
func Load(path string) (*schnorr.PrivateKey, *schnorr.PublicKey, error) {
	parser := &JSONParser{}
	return parser.ParseKeyPair(path)
}

// Save writes a key pair to a JSON file with the default field names. The
// file is created with mode 0600 since it holds the private scalar.
func Save(path string, priv *schnorr.PrivateKey, pub *schnorr.PublicKey) error {
	privBuf := make([]byte, schnorr.ScalarSize)
	if err := priv.Serialize(privBuf, 0); err != nil {
		return fmt.Errorf("failed to serialize private key: %w", err)
	}

	content := keyFile{
		"private_key":    fmt.Sprintf("%x", privBuf),
		"public_key_hex": pub.String(),
	}
	if content["public_key_hex"] == "" {
		return fmt.Errorf("failed to serialize public key")
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key file: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// trimHexPrefix strips an optional 0x prefix.
func trimHexPrefix(s string) string {
	s = strings.TrimPrefix(s, "0x")
	return strings.TrimPrefix(s, "0X")
}
