//go:build unit

package negotiation_test

import (
	"strings"
	"testing"

	"haggle-service/internal/domain/negotiation"

	"github.com/stretchr/testify/assert"
)

func TestContentFilter(t *testing.T) {
	filter := negotiation.NewContentFilter()

	t.Run("clean content passes through untouched", func(t *testing.T) {
		for _, content := range []string{
			"Is the price negotiable?",
			"Would you take a bit less for it?",
			"I can pick it up tomorrow afternoon.",
			"It has a small scratch on the lid.",
		} {
			result := filter.Filter(content)
			assert.False(t, result.Filtered, content)
			assert.Equal(t, content, result.Content, content)
			assert.Empty(t, result.Reason, content)
		}
	})

	t.Run("redacts contact and payment attempts", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
			keep    string
		}{
			{name: "email", content: "reach me at bob.smith+deals@mail.example.org thanks", keep: "reach me at"},
			{name: "phone", content: "call me on +49 170 1234567 anytime", keep: "call me on"},
			{name: "phone with separators", content: "my number is (555) 123-4567", keep: "my number is"},
			{name: "messenger keyword", content: "do you have telegram or signal", keep: "do you have"},
			{name: "at-handle", content: "find me as @berlin_seller99", keep: "find me as"},
			{name: "payment service", content: "I only take PayPal friends and family", keep: "I only take"},
			{name: "crypto", content: "happy to pay in bitcoin instead", keep: "happy to pay in"},
			{name: "competing platform", content: "I also listed it on ebay for less", keep: "I also listed it on"},
			{name: "off-platform solicitation", content: "let us deal outside the app and avoid fees", keep: "let us deal"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result := filter.Filter(tc.content)
				assert.True(t, result.Filtered)
				assert.Equal(t, negotiation.FilteredReason, result.Reason)
				assert.Contains(t, result.Content, negotiation.RedactionMarker)
				assert.Contains(t, result.Content, tc.keep, "surrounding text survives")
			})
		}
	})

	t.Run("redacts every occurrence", func(t *testing.T) {
		result := filter.Filter("a@b.example or c@d.example")
		assert.True(t, result.Filtered)
		assert.Equal(t, 2, strings.Count(result.Content, negotiation.RedactionMarker))
	})

	t.Run("multiple categories in one message", func(t *testing.T) {
		result := filter.Filter("email me at eve@example.com or venmo me")
		assert.True(t, result.Filtered)
		assert.NotContains(t, result.Content, "eve@example.com")
		assert.NotContains(t, strings.ToLower(result.Content), "venmo")
	})

	t.Run("short digit runs are not phone numbers", func(t *testing.T) {
		result := filter.Filter("asking 1500, firm")
		assert.False(t, result.Filtered)
	})
}
