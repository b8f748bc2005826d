package mailer

import (
	"html/template"
	"strings"

	"github.com/cockroachdb/errors"
)

const VerificationSubject = "Confirm your Hemo account"

// kept deliberately small - the styled production template lives with the
// frontend designers, the backend only owns the render contract
const verificationBody = `<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #333;">
<h1>Welcome!</h1>
<p>Hi {{.Name}}, we're excited to have you get started. First, you need to
confirm your account. Just press the button below.</p>
<p><a href="{{.URL}}" target="_blank"
style="background: #FFA73B; color: #fff; padding: 15px 25px; text-decoration: none;">Confirm Account</a></p>
<p>If that doesn't work, copy and paste the following link in your browser:</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
<p>Cheers,<br>Dev334</p>
</body>
</html>`

var verificationTemplate = template.Must(
	template.New("verification").Parse(verificationBody))

// RenderVerification produces the HTML body for the confirm-account email.
func RenderVerification(name string, verificationURL string) (string, error) {
	vars := struct {
		Name string
		URL  string
	}{
		Name: name,
		URL:  verificationURL,
	}

	builder := strings.Builder{}
	if err := verificationTemplate.Execute(&builder, vars); err != nil {
		return "", errors.Wrap(err, "Failed to render the verification email template")
	}

	return builder.String(), nil
}
