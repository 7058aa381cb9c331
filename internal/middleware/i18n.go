// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/inventory-tracker/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage maps the first Accept-Language entry, e.g. "zh-TW,zh;q=0.9",
// onto a loaded locale.
func parseLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLanguage()
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])

	var lang string
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW", "zh-HK":
		lang = "zh_TW"
	case "en", "en-US", "en-GB":
		lang = "en"
	default:
		lang = strings.ReplaceAll(first, "-", "_")
	}

	if !i18n.IsSupported(lang) {
		return i18n.DefaultLanguage()
	}
	return lang
}
