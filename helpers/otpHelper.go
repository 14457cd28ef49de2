package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"
)

// 2Factor SMS gateway. Send expects the number in full international form
// with a leading plus, verify expects country code plus digits with no plus.
// The asymmetry is the gateway's, not ours.

var twoFactorBaseURL = "https://2factor.in/API/V1"

var otpClient = &http.Client{Timeout: 15 * time.Second}

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{4,6}$`)
)

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func ValidOTP(otp string) bool {
	return otpPattern.MatchString(otp)
}

func SendPhone(phone string) string {
	return "+91" + phone
}

func VerifyPhone(phone string) string {
	return "91" + phone
}

type gatewayResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

func callGateway(url string) (gatewayResponse, error) {
	var body gatewayResponse

	resp, err := otpClient.Get(url)
	if err != nil {
		return body, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return body, err
	}
	if body.Status != "Success" {
		return body, fmt.Errorf("gateway: %s", body.Details)
	}
	return body, nil
}

// SendOTP asks the gateway to generate and deliver an OTP. Returns the
// gateway session id.
func SendOTP(phone string, template string) (string, error) {
	apiKey := os.Getenv("TWO_FACTOR_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("TWO_FACTOR_API_KEY is not set")
	}
	if template == "" {
		template = "AUTOGEN"
	}
	url := fmt.Sprintf("%s/%s/SMS/%s/%s", twoFactorBaseURL, apiKey, SendPhone(phone), template)
	body, err := callGateway(url)
	if err != nil {
		return "", err
	}
	return body.Details, nil
}

func VerifyOTP(phone string, otp string) error {
	apiKey := os.Getenv("TWO_FACTOR_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("TWO_FACTOR_API_KEY is not set")
	}
	url := fmt.Sprintf("%s/%s/SMS/VERIFY3/%s/%s", twoFactorBaseURL, apiKey, VerifyPhone(phone), otp)
	_, err := callGateway(url)
	return err
}
