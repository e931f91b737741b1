package extract

import (
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/emersion/go-sasl"
)

var rxContinuation = regexp.MustCompile(`^\+ (.*)\r\n`)

// ParseAuthenticateResponse returns the payload of a continuation request sent during AUTHENTICATE.
func ParseAuthenticateResponse(line string) (string, error) {
	match := rxContinuation.FindStringSubmatch(line)
	if match == nil {
		return "", &AuthenticationParseError{Line: line}
	}

	return match[1], nil
}

// RespondToChallenge answers the continuation request with the next step of the SASL exchange.
// The returned line is base64 encoded and terminated by CRLF, ready to be written to the server.
func RespondToChallenge(client sasl.Client, line string) (string, error) {
	payload, err := ParseAuthenticateResponse(line)
	if err != nil {
		return "", err
	}

	challenge, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: challenge is not base64: %v", ErrAuthenticationParse, err)
	}

	resp, err := client.Next(challenge)
	if err != nil {
		return "", fmt.Errorf("failed to answer challenge: %w", err)
	}

	return base64.StdEncoding.EncodeToString(resp) + "\r\n", nil
}
