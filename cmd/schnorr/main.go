// Command schnorr generates EC-Schnorr key pairs and signs and verifies
// messages with them.
//
// Generate a key pair:
//
//	schnorr -keygen -key-file key.json
//
// Sign a message:
//
//	schnorr -sign -key-file key.json -message "hello"
//
// Verify a signature:
//
//	schnorr -verify -public-key 02... -signature 1f4a... -message "hello"
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mahdiidarabi/ec-schnorr/pkg/keystore"
	"github.com/mahdiidarabi/ec-schnorr/pkg/schnorr"
)

var log = logrus.New()

func main() {
	var (
		keygen     = flag.Bool("keygen", false, "Generate a new key pair")
		sign       = flag.Bool("sign", false, "Sign a message with the key in -key-file")
		verify     = flag.Bool("verify", false, "Verify -signature over -message with -public-key")
		keyFile    = flag.String("key-file", "key.json", "Path to the JSON key file")
		message    = flag.String("message", "", "Message to sign or verify (UTF-8 text)")
		messageHex = flag.String("message-hex", "", "Message to sign or verify (hex, overrides -message)")
		signature  = flag.String("signature", "", "Signature in hex format (128 chars) for verification")
		publicKey  = flag.String("public-key", "", "Public key in hex format (compressed, 66 chars) for verification")
		verbose    = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch {
	case *keygen:
		runKeygen(*keyFile)
	case *sign:
		runSign(*keyFile, messageBytes(*message, *messageHex))
	case *verify:
		runVerify(*publicKey, *signature, messageBytes(*message, *messageHex))
	default:
		fmt.Fprintf(os.Stderr, "Error: must specify one of -keygen, -sign, or -verify\n")
		flag.Usage()
		os.Exit(1)
	}
}

func messageBytes(text, hexStr string) []byte {
	if hexStr != "" {
		b, err := hex.DecodeString(hexStr)
		if err != nil {
			log.Fatalf("Invalid -message-hex: %v", err)
		}
		return b
	}
	return []byte(text)
}

func runKeygen(keyFile string) {
	priv, pub, err := schnorr.GenerateKeyPair()
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}
	defer priv.Zero()

	if err := keystore.Save(keyFile, priv, pub); err != nil {
		log.Fatalf("Failed to save key pair: %v", err)
	}

	log.Debugf("key pair written to %s", keyFile)
	fmt.Printf("Public key: %s\n", pub)
	fmt.Printf("Key file:   %s\n", keyFile)
}

func runSign(keyFile string, message []byte) {
	if len(message) == 0 {
		log.Fatal("A non-empty -message or -message-hex is required")
	}

	priv, pub, err := keystore.Load(keyFile)
	if err != nil {
		log.Fatalf("Failed to load key pair: %v", err)
	}
	defer priv.Zero()

	sig, err := schnorr.Sign(message, priv, pub)
	if err != nil {
		log.Fatalf("Failed to sign: %v", err)
	}

	fmt.Printf("Public key: %s\n", pub)
	fmt.Printf("Signature:  %s\n", sig)
}

func runVerify(publicKey, signature string, message []byte) {
	if publicKey == "" || signature == "" {
		log.Fatal("-public-key and -signature are required")
	}
	if len(message) == 0 {
		log.Fatal("A non-empty -message or -message-hex is required")
	}

	pub, err := schnorr.NewPublicKeyFromString(publicKey)
	if err != nil {
		log.Fatalf("Invalid public key: %v", err)
	}
	sig, err := schnorr.NewSignatureFromString(signature)
	if err != nil {
		log.Fatalf("Invalid signature: %v", err)
	}

	if schnorr.Verify(message, sig, pub) {
		fmt.Println("Signature is valid")
		return
	}
	fmt.Println("Signature is INVALID")
	os.Exit(1)
}
