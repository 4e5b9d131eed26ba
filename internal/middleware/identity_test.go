package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityContext(t *testing.T, email, name string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var err error
	c.Request, err = http.NewRequest("POST", "/api/contributions", nil)
	require.NoError(t, err)
	if email != "" {
		c.Request.Header.Set(HeaderContributorEmail, email)
	}
	if name != "" {
		c.Request.Header.Set(HeaderContributorName, name)
	}
	return c, w
}

func TestRequireContributor_MissingEmail(t *testing.T) {
	c, w := identityContext(t, "", "")

	RequireContributor()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireContributor_SetsIdentity(t *testing.T) {
	c, _ := identityContext(t, "a@x.com", "Ada")

	RequireContributor()(c)

	assert.False(t, c.IsAborted())
	email, name := ContributorFrom(c)
	assert.Equal(t, "a@x.com", email)
	assert.Equal(t, "Ada", name)
}

func TestRequireContributor_NameDefaultsToLocalPart(t *testing.T) {
	c, _ := identityContext(t, "grace@x.com", "")

	RequireContributor()(c)

	email, name := ContributorFrom(c)
	assert.Equal(t, "grace@x.com", email)
	assert.Equal(t, "grace", name)
}
