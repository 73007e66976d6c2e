package auth

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestBuildLoginPageDataReasons(t *testing.T) {
	t.Parallel()

	require.Empty(t, BuildLoginPageData("/admin", "", "").Error)
	require.Contains(t, BuildLoginPageData("/admin", "expired", "").Error, "expired")
	require.Equal(t, "Sign-in failed. Please try again.", BuildLoginPageData("/admin", "denied", "").Error)
}

func TestLoginRendersFirebaseContainer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Login(BuildLoginPageData("/claims", "expired", "claims-demo")).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	main := doc.Find("main[data-login]")
	require.Equal(t, "claims-demo", main.AttrOr("data-firebase-project", ""))
	require.Equal(t, "/claims", main.AttrOr("data-redirect", ""))
	require.Equal(t, 1, doc.Find("#firebase-auth-container").Length())
	require.Equal(t, 1, doc.Find("[data-login-error]").Length())
	require.Equal(t, 0, doc.Find("[data-app-shell]").Length(), "sign-in page has no dashboard chrome")
}
