package handlers

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"messenger-bot/config"
)

var authorizePage = template.Must(template.New("authorize").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Account Linking</title>
</head>
<body>
  <h1>Link your account</h1>
  <p>Confirm to link this conversation to your account.</p>
  <a href="{{.SuccessURI}}">Sign in</a>
</body>
</html>
`))

// AuthorizeAccountLinking renders the account linking confirmation
// page. The success link sends the user back to the platform's
// redirect URI with a freshly generated authorization code appended.
func AuthorizeAccountLinking(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		linkingToken := c.Query("account_linking_token")
		redirectURI := c.Query("redirect_uri")
		if redirectURI == "" {
			return fiber.NewError(fiber.StatusBadRequest, "missing redirect_uri")
		}

		authCode := uuid.NewString()
		successURI := redirectURI + "&authorization_code=" + authCode

		slog.Info("Rendering account linking page",
			"accountLinkingToken", linkingToken,
			"redirectURI", redirectURI,
		)

		var buf bytes.Buffer
		if err := authorizePage.Execute(&buf, struct{ SuccessURI string }{SuccessURI: successURI}); err != nil {
			return err
		}

		c.Type("html")
		return c.Send(buf.Bytes())
	}
}
