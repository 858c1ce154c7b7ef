package utils

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	ciphertext, err := EncryptData("ABCDE1234F")
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if ciphertext == "ABCDE1234F" {
		t.Fatal("ciphertext equals plaintext")
	}

	plaintext, err := DecryptData(ciphertext)
	if err != nil {
		t.Fatalf("DecryptData: %v", err)
	}
	if plaintext != "ABCDE1234F" {
		t.Errorf("round trip = %q, want original value", plaintext)
	}
}

func TestEncryptEmptyString(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	ciphertext, err := EncryptData("")
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if ciphertext != "" {
		t.Errorf("empty input should stay empty, got %q", ciphertext)
	}
}

func TestDecryptRequiresKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")

	if _, err := DecryptData("c29tZXRoaW5n"); err == nil {
		t.Fatal("expected error without a key")
	}
}
