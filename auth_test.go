package main

import "testing"

func newTestAuth(t *testing.T) (*Auth, *DB) {
	t.Helper()
	db := openTestDB(t)
	return NewAuth(db, 24), db
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	auth, _ := newTestAuth(t)

	id, token, err := auth.Register("player1", "p@example.com", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == 0 || token == "" {
		t.Fatal("register should return an ID and a token")
	}

	lid, ltoken, err := auth.Login("player1", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if lid != id || ltoken == "" {
		t.Error("login should resolve the same account")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)
	auth.Register("player1", "", "secret")

	if _, _, err := auth.Login("player1", "wrong"); err == nil {
		t.Error("wrong password should fail")
	}
	if _, _, err := auth.Login("ghost", "secret"); err == nil {
		t.Error("unknown user should fail")
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, _, err := auth.Register("x", "", "secret"); err == nil {
		t.Error("too-short username should fail")
	}
	if _, _, err := auth.Register("okname", "", "abc"); err == nil {
		t.Error("too-short password should fail")
	}
	if _, _, err := auth.Register("thisusernameiswaytoolong", "", "secret"); err == nil {
		t.Error("too-long username should fail")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, _ := newTestAuth(t)
	if _, _, err := auth.Register("taken", "", "secret"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := auth.Register("taken", "", "secret2"); err == nil {
		t.Error("duplicate username should fail")
	}
}

func TestValidateToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	id, token, _ := auth.Register("tokenuser", "", "secret")

	pid, username, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if pid != id || username != "tokenuser" {
		t.Errorf("token claims wrong: %d %s", pid, username)
	}

	if _, _, err := auth.ValidateToken("garbage.token.here"); err == nil {
		t.Error("garbage token should fail validation")
	}
}

func TestTokenSecretPersists(t *testing.T) {
	auth, db := newTestAuth(t)
	_, token, _ := auth.Register("persist", "", "secret")

	// A second Auth over the same DB must accept tokens from the first
	auth2 := NewAuth(db, 24)
	if _, _, err := auth2.ValidateToken(token); err != nil {
		t.Errorf("token should survive an auth restart: %v", err)
	}
}

func TestLoginRateLimit(t *testing.T) {
	auth, _ := newTestAuth(t)
	ip := "203.0.113.9"
	for i := 0; i < maxLoginAttempts; i++ {
		if !auth.CheckRate(ip) {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if auth.CheckRate(ip) {
		t.Error("attempts past the limit should be throttled")
	}
	if !auth.CheckRate("198.51.100.7") {
		t.Error("other addresses are unaffected")
	}
}
