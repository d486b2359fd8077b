package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns the local part of an email address into a name,
// e.g. "jane.doe@aup.edu" -> "Jane Doe".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	return cases.Title(language.English).String(strings.Join(strings.Fields(local), " "))
}

// Greeting is the dashboard header line for a logged-in student.
func Greeting(email string) string {
	name := DisplayName(email)
	if name == "" {
		return accentStyle.Render("American University of Paris · Course Registration System")
	}
	return accentStyle.Render("American University of Paris · Course Registration System") + "\n" + "Welcome, " + name
}
