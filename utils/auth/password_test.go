package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if err := VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("VerifyPassword() error = %v for the correct password", err)
	}

	if err := VerifyPassword(hash, "wrong password"); err != ErrPasswordMismatch {
		t.Errorf("VerifyPassword() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestHashPasswordRejectsShortPassword(t *testing.T) {
	if _, err := HashPassword("2short"); err != ErrPasswordTooShort {
		t.Errorf("HashPassword() error = %v, want ErrPasswordTooShort", err)
	}
}

func TestIsPasswordValid(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"short", false},
		{"", false},
		{"exactly8", true},
		{"a much longer passphrase", true},
	}

	for _, tc := range cases {
		if got := IsPasswordValid(tc.password); got != tc.want {
			t.Errorf("IsPasswordValid(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
