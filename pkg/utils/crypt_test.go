package utils

import "testing"

func TestCryptRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping bcrypt test in short mode")
	}
	hash, err := Crypt("s3cret-password")
	if err != nil {
		t.Fatalf("Crypt: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals the plain password")
	}
	if !VerifyPassword("s3cret-password", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}
