package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Contributor identity headers. Sign-in is email-only and unverified:
// the frontend sends whatever the visitor typed. There are no tokens and
// no credential checks anywhere in this system.
const (
	HeaderContributorEmail = "X-Contributor-Email"
	HeaderContributorName  = "X-Contributor-Name"
)

// Context keys set by the identity middlewares.
const (
	CtxContributorEmail = "contributorEmail"
	CtxContributorName  = "contributorName"
)

// RequireContributor rejects mutation requests that carry no contributor
// email. The name defaults to the email's local part when omitted.
func RequireContributor() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderContributorEmail))
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in with your email to contribute"})
			c.Abort()
			return
		}

		name := strings.TrimSpace(c.GetHeader(HeaderContributorName))
		if name == "" {
			name = email
			if at := strings.Index(email, "@"); at > 0 {
				name = email[:at]
			}
		}

		c.Set(CtxContributorEmail, email)
		c.Set(CtxContributorName, name)
		c.Next()
	}
}

// ContributorFrom reads the identity set by RequireContributor.
func ContributorFrom(c *gin.Context) (email, name string) {
	if v, ok := c.Get(CtxContributorEmail); ok {
		email, _ = v.(string)
	}
	if v, ok := c.Get(CtxContributorName); ok {
		name, _ = v.(string)
	}
	return email, name
}
