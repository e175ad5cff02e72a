package site

// navLink is one navbar entry.
type navLink struct {
	Name   string
	Path   string
	Active bool
}

var navLinks = []navLink{
	{Name: "Home", Path: "/"},
	{Name: "Articles", Path: "/category/articles"},
	{Name: "Workshop", Path: "/category/workshop"},
	{Name: "Photos", Path: "/category/photos"},
	{Name: "Contacts", Path: "/category/contacts"},
}

// navFor marks the link whose path equals the request path exactly.
func navFor(path string) []navLink {
	links := make([]navLink, len(navLinks))
	for i, l := range navLinks {
		l.Active = l.Path == path
		links[i] = l
	}
	return links
}

// greeting picks the navbar greeting for an hour of the day.
func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning!"
	case hour < 18:
		return "Good Afternoon!"
	default:
		return "Good Evening!"
	}
}
