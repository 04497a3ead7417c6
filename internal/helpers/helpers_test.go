package helpers

import (
	"testing"
)

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	first, err := HashPassword("Secur3!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("Secur3!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if first == second {
		t.Error("identical inputs produced identical hashes, salt is not fresh")
	}
	if first == "Secur3!" {
		t.Error("hash equals the plaintext password")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secur3!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !VerifyPassword("Secur3!", hash) {
		t.Error("correct password did not verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password verified")
	}
	if VerifyPassword("Secur3!", "not-a-bcrypt-hash") {
		t.Error("malformed hash verified")
	}
	if VerifyPassword("Secur3!", "") {
		t.Error("empty hash verified")
	}
}

func TestGenerateOtpShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOtp()
		if len(code) != OtpLength {
			t.Fatalf("expected %d digits, got %q", OtpLength, code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-numeric otp %q", code)
			}
		}
	}
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerateToken()
		if token == "" {
			t.Fatal("empty token")
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
