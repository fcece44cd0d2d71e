package crypto

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	svc, err := New("00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !svc.Configured() {
		t.Fatal("expected service to be configured")
	}

	sealed, err := svc.Encrypt([]byte("ES91 2100 0418 4502 0005 1332"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(sealed, []byte("2100")) {
		t.Fatal("ciphertext leaks plaintext")
	}

	plain, err := svc.Decrypt(sealed)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(plain) != "ES91 2100 0418 4502 0005 1332" {
		t.Fatalf("round trip mismatch: %q", plain)
	}
}

func TestUnconfiguredPassesThrough(t *testing.T) {
	svc, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := svc.Encrypt([]byte("plain"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if string(out) != "plain" {
		t.Fatal("expected passthrough without a key")
	}
}

func TestRejectsShortKey(t *testing.T) {
	if _, err := New("deadbeef"); err == nil {
		t.Fatal("expected error for short key")
	}
}
