package pkg

import (
	"fmt"
	"math/rand"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const digits = "0123456789"

func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandCode generates the short shareable room code (digits only, no
// leading zero so codes keep a fixed visible width).
func RandCode(n int) string {
	b := make([]byte, n)
	b[0] = digits[1+rand.Intn(len(digits)-1)]
	for i := 1; i < n; i++ {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}

// HostAddress derives the well-known host channel address for a room
// code. Remote participants connect to this deterministic name.
func HostAddress(code string) string {
	return fmt.Sprintf("poly-%s-host", code)
}
