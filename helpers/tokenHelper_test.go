package helpers

import (
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"
)

func TestTokenLifetime(t *testing.T) {
	assert.Equal(t, TokenLifetime(RoleAdmin), 24*time.Hour)
	assert.Equal(t, TokenLifetime(RoleKitchen), 7*24*time.Hour)
	assert.Equal(t, TokenLifetime(RoleCustomer), 24*time.Hour)
}

func TestGenerateAndValidateToken(t *testing.T) {
	SECRET_KEY = "test-secret"

	token, err := GenerateToken("uid1", "Alice", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	claims, msg := ValidateToken(token)
	assert.Equal(t, msg, "")
	assert.Equal(t, claims.Uid, "uid1")
	assert.Equal(t, claims.Name, "Alice")
	assert.Equal(t, claims.User_role, RoleAdmin)

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Fatalf("admin token expiry out of range: %v", remaining)
	}
}

func TestKitchenTokenLastsAWeek(t *testing.T) {
	SECRET_KEY = "test-secret"

	token, err := GenerateToken("uid2", "Kitchen Display", RoleKitchen)
	if err != nil {
		t.Fatal(err)
	}
	claims, msg := ValidateToken(token)
	assert.Equal(t, msg, "")

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining < 6*24*time.Hour || remaining > 8*24*time.Hour {
		t.Fatalf("kitchen token expiry out of range: %v", remaining)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SECRET_KEY = "test-secret"

	_, msg := ValidateToken("not-a-token")
	assert.NotEqual(t, msg, "")
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SECRET_KEY = "test-secret"
	token, err := GenerateToken("uid1", "Alice", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	SECRET_KEY = "another-secret"
	_, msg := ValidateToken(token)
	assert.NotEqual(t, msg, "")
}
