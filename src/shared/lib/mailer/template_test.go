package mailer_test

import (
	"strings"

	"github.com/dev334/hemo-be/src/shared/lib/mailer"
	. "github.com/dev334/hemo-be/src/shared/testing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RenderVerification", func() {
	It("greets the user by name", func() {
		body := ExpectSuccess(mailer.RenderVerification("Recipient Name", "https://hemo.com/verify/abc"))
		Expect(body).To(ContainSubstring("Hi Recipient Name"))
	})

	It("links the confirmation URL for the button and as a fallback", func() {
		body := ExpectSuccess(mailer.RenderVerification("Recipient Name", "https://hemo.com/verify/abc"))

		occurrences := strings.Count(body, `href="https://hemo.com/verify/abc"`)
		Expect(occurrences).To(BeNumerically(">=", 2))
	})

	It("escapes HTML in the user's name", func() {
		body := ExpectSuccess(mailer.RenderVerification("<script>alert(1)</script>", "https://hemo.com/verify/abc"))

		Expect(body).NotTo(ContainSubstring("<script>"))
		Expect(body).To(ContainSubstring("&lt;script&gt;"))
	})
})
