package middleware

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"messenger-bot/config"
)

const signatureHeader = "x-hub-signature"

// ValidateSignature checks the x-hub-signature header value against an
// HMAC-SHA1 digest of the raw request body. The header carries
// "method=hexDigest"; only the digest portion is compared, the method
// tag is not used to switch algorithms.
func ValidateSignature(appSecret string, body []byte, header string) error {
	_, digest, found := strings.Cut(header, "=")
	if !found {
		return fmt.Errorf("malformed signature header: %q", header)
	}

	mac := hmac.New(sha1.New, []byte(appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(digest)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// VerifyRequestSignature returns a Fiber handler that authenticates the
// webhook body before it is parsed. A missing header is logged and let
// through; only a header that is present and fails validation aborts
// the request.
func VerifyRequestSignature(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(signatureHeader)
		if header == "" {
			slog.Warn("Couldn't validate the signature", "path", c.Path())
			return c.Next()
		}

		// c.Body() is the raw byte buffer; validation has to happen on
		// exactly the bytes the platform signed, prior to JSON decoding.
		if err := ValidateSignature(cfg.AppSecret, c.Body(), header); err != nil {
			slog.Error("Couldn't validate the request signature", "error", err)
			return fiber.NewError(fiber.StatusForbidden, "invalid request signature")
		}

		return c.Next()
	}
}
