package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
)

// gensecret generates a random HS256 signing secret for session tokens
//
// Usage:
//   go run cmd/gensecret/main.go
//
// The output should be stored in SESSION_SECRET
func main() {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Println("Add this to your environment:")
	fmt.Printf("SESSION_SECRET=%s\n", hex.EncodeToString(secret))
}
