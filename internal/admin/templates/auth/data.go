package auth

// LoginPageData encapsulates rendering state for the sign-in screen.
type LoginPageData struct {
	Message         string
	Error           string
	BasePath        string
	FirebaseProject string
}

// BuildLoginPageData maps the login query reason onto user-facing copy.
func BuildLoginPageData(basePath, reason, firebaseProject string) LoginPageData {
	data := LoginPageData{
		BasePath:        basePath,
		FirebaseProject: firebaseProject,
		Message:         "Sign in with your Contoso account to open the claims dashboard.",
	}
	switch reason {
	case "expired":
		data.Error = "Your session has expired. Please sign in again."
	case "":
	default:
		data.Error = "Sign-in failed. Please try again."
	}
	return data
}
