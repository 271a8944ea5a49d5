package crypto

import (
	"encoding/hex"
	"testing"
)

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() unexpected error: %v", err)
	}

	raw, err := hex.DecodeString(salt)
	if err != nil {
		t.Fatalf("GenerateSalt() returned non-hex salt %q: %v", salt, err)
	}
	if len(raw) != 16 {
		t.Errorf("GenerateSalt() salt length = %d bytes, want 16", len(raw))
	}
}

func TestGenerateSaltUnique(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() unexpected error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() unexpected error: %v", err)
	}
	if s1 == s2 {
		t.Error("GenerateSalt() produced identical salts")
	}
}

func TestHashPassword(t *testing.T) {
	hash := HashPassword("correct-horse-battery-staple", "00112233445566778899aabbccddeeff")

	raw, err := hex.DecodeString(hash)
	if err != nil {
		t.Fatalf("HashPassword() returned non-hex hash: %v", err)
	}
	if len(raw) != 64 {
		t.Errorf("HashPassword() key length = %d bytes, want 64", len(raw))
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	salt := "00112233445566778899aabbccddeeff"

	h1 := HashPassword("same-password", salt)
	h2 := HashPassword("same-password", salt)
	if h1 != h2 {
		t.Error("HashPassword() not deterministic for same password and salt")
	}

	h3 := HashPassword("same-password", "ffeeddccbbaa99887766554433221100")
	if h1 == h3 {
		t.Error("HashPassword() ignored the salt")
	}
}

func TestVerifyPasswordCorrect(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() unexpected error: %v", err)
	}
	hash := HashPassword("my-secure-password", salt)

	if !VerifyPassword("my-secure-password", salt, hash) {
		t.Error("VerifyPassword() returned false for correct password")
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() unexpected error: %v", err)
	}
	hash := HashPassword("correct-password", salt)

	if VerifyPassword("wrong-password", salt, hash) {
		t.Error("VerifyPassword() returned true for wrong password")
	}
}
