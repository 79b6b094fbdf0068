package ui

import "testing"

func TestTemplatesEmbedded(t *testing.T) {
	names := []string{
		"base.html",
		"home.html",
		"login.html",
		"register.html",
		"dashboard.html",
		"clients.html",
		"client_new.html",
		"client_detail.html",
		"tasks.html",
		"task_new.html",
		"task_detail.html",
		"task_edit.html",
		"calendar.html",
	}
	for _, name := range names {
		if _, err := templateFS.Open("templates/" + name); err != nil {
			t.Fatalf("expected embedded template %s, got error: %v", name, err)
		}
	}
}

func TestPageSetsCloneBase(t *testing.T) {
	for _, name := range []string{"login.html", "clients.html", "tasks.html", "calendar.html"} {
		set, ok := templates[name]
		if !ok {
			t.Fatalf("missing template set %s", name)
		}
		if set.Lookup("content") == nil {
			t.Errorf("set %s has no content block", name)
		}
		if set.Lookup("base.html") == nil {
			t.Errorf("set %s did not clone the base layout", name)
		}
	}
}
