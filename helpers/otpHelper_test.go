package helpers

import (
	"testing"

	"gopkg.in/go-playground/assert.v1"
)

func TestValidPhone(t *testing.T) {
	assert.Equal(t, ValidPhone("9876543210"), true)
	assert.Equal(t, ValidPhone("987654321"), false)   // 9 digits
	assert.Equal(t, ValidPhone("98765432100"), false) // 11 digits
	assert.Equal(t, ValidPhone("98765 4321"), false)
	assert.Equal(t, ValidPhone("+919876543210"), false)
	assert.Equal(t, ValidPhone(""), false)
}

func TestValidOTP(t *testing.T) {
	assert.Equal(t, ValidOTP("1234"), true)
	assert.Equal(t, ValidOTP("123456"), true)
	assert.Equal(t, ValidOTP("123"), false)
	assert.Equal(t, ValidOTP("1234567"), false)
	assert.Equal(t, ValidOTP("12a4"), false)
}

// Send wants the plus-prefixed international form, verify wants bare digits
// with the country code. Both sides come from the same 10-digit input.
func TestPhoneFormats(t *testing.T) {
	assert.Equal(t, SendPhone("9876543210"), "+919876543210")
	assert.Equal(t, VerifyPhone("9876543210"), "919876543210")
}
