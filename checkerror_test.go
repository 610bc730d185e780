package authprovider

import (
	"net/http"
	"testing"
)

func TestCheckError_401(t *testing.T) {
	var targets []string
	p, err := New(Config{Host: "api.example.com"},
		WithLocationFunc(func() string { return "/admin/reports" }),
		WithRedirectFunc(func(target string) { targets = append(targets, target) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.store.Set(StorageKey, "tok")

	redirects := map[int]string{
		http.StatusUnauthorized: "/sign-in",
		http.StatusForbidden:    "/forbidden",
	}
	if err := p.CheckError(http.StatusUnauthorized, redirects); err != nil {
		t.Fatalf("CheckError() error = %v", err)
	}

	if p.IsSignedIn() {
		t.Error("IsSignedIn() = true, want token cleared on 401")
	}
	if len(targets) != 1 {
		t.Fatalf("redirect callback invoked %d times, want 1", len(targets))
	}
	if want := "/sign-in?redirectTo=%2Fadmin%2Freports"; targets[0] != want {
		t.Errorf("redirect target = %v, want %v", targets[0], want)
	}
}

func TestCheckError_403(t *testing.T) {
	var targets []string
	p, err := New(Config{Host: "api.example.com"},
		WithRedirectFunc(func(target string) { targets = append(targets, target) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.store.Set(StorageKey, "tok")

	redirects := map[int]string{
		http.StatusUnauthorized: "/sign-in",
		http.StatusForbidden:    "/forbidden",
	}
	if err := p.CheckError(http.StatusForbidden, redirects); err != nil {
		t.Fatalf("CheckError() error = %v", err)
	}

	if !p.IsSignedIn() {
		t.Error("IsSignedIn() = false, want token untouched on 403")
	}
	if len(targets) != 1 {
		t.Fatalf("redirect callback invoked %d times, want 1", len(targets))
	}
	if targets[0] != "/forbidden" {
		t.Errorf("redirect target = %v, want /forbidden", targets[0])
	}
}

func TestCheckError_OtherStatusesNoOp(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var redirects int
			p, err := New(Config{Host: "api.example.com"},
				WithRedirectFunc(func(string) { redirects++ }),
			)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			p.store.Set(StorageKey, "tok")

			if err := p.CheckError(tt.status, map[int]string{tt.status: "/somewhere"}); err != nil {
				t.Fatalf("CheckError() error = %v", err)
			}
			if !p.IsSignedIn() {
				t.Error("token cleared for a status CheckError should ignore")
			}
			if redirects != 0 {
				t.Errorf("redirect callback invoked %d times, want 0", redirects)
			}
		})
	}
}

func TestCheckError_401WithoutTarget(t *testing.T) {
	var redirects int
	p, err := New(Config{Host: "api.example.com"},
		WithRedirectFunc(func(string) { redirects++ }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.store.Set(StorageKey, "tok")

	// No 401 entry: the redirect is skipped but the token is still cleared.
	if err := p.CheckError(http.StatusUnauthorized, map[int]string{}); err != nil {
		t.Fatalf("CheckError() error = %v", err)
	}
	if p.IsSignedIn() {
		t.Error("IsSignedIn() = true, want token cleared even without a redirect target")
	}
	if redirects != 0 {
		t.Errorf("redirect callback invoked %d times, want 0", redirects)
	}
}

func TestCheckError_DefaultRedirectIsNoOp(t *testing.T) {
	p, err := New(Config{Host: "api.example.com"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.store.Set(StorageKey, "tok")

	// Must not panic without a configured redirect callback.
	if err := p.CheckError(http.StatusUnauthorized, map[int]string{http.StatusUnauthorized: "/sign-in"}); err != nil {
		t.Fatalf("CheckError() error = %v", err)
	}
	if p.IsSignedIn() {
		t.Error("IsSignedIn() = true, want token cleared")
	}
}
