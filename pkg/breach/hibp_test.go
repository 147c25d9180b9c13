package breach

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHashPrefixSuffix(t *testing.T) {
	// SHA-1("password") = 5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8
	prefix, suffix := HashPrefixSuffix("password")
	if prefix != "5BAA6" {
		t.Errorf("prefix = %q, want 5BAA6", prefix)
	}
	if suffix != "1E4C9B93F3F0682250B6CF8331B7EE68FD8" {
		t.Errorf("suffix = %q", suffix)
	}
	if len(prefix) != 5 || len(suffix) != 35 {
		t.Errorf("prefix/suffix lengths = %d/%d, want 5/35", len(prefix), len(suffix))
	}
}

func TestMatchSuffix(t *testing.T) {
	body := strings.Join([]string{
		"0018A45C4D1DEF81644B54AB7F969B88D65:1",
		"1E4C9B93F3F0682250B6CF8331B7EE68FD8:9659365",
		"011053FD0102E94D6AE2F8B83D76FAF94F6:3",
	}, "\r\n")

	tests := []struct {
		name   string
		suffix string
		want   int64
	}{
		{name: "match", suffix: "1E4C9B93F3F0682250B6CF8331B7EE68FD8", want: 9659365},
		{name: "case insensitive match", suffix: "1e4c9b93f3f0682250b6cf8331b7ee68fd8", want: 9659365},
		{name: "no match", suffix: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchSuffix(body, tt.suffix); got != tt.want {
				t.Fatalf("MatchSuffix = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/range/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		prefix := strings.TrimPrefix(r.URL.Path, "/range/")
		if len(prefix) != 5 {
			t.Errorf("range prefix %q is not 5 chars", prefix)
		}
		w.Write([]byte("1E4C9B93F3F0682250B6CF8331B7EE68FD8:42\r\nAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA:1\r\n"))
	}))
	defer server.Close()

	client := NewClient(NewClientParams{PasswordURL: server.URL})

	result, err := client.CheckPassword(context.Background(), "password")
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if result.Status != "found" || result.TimesSeen != 42 {
		t.Fatalf("result = %+v, want found/42", result)
	}

	result, err = client.CheckPassword(context.Background(), "some-password-not-in-range")
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if result.Status != "safe" || result.TimesSeen != 0 {
		t.Fatalf("result = %+v, want safe/0", result)
	}
}

func TestCheckEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("hibp-api-key") == "" {
			t.Errorf("missing api key header")
		}
		if strings.Contains(r.URL.Path, "clean@example.com") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`[{"Name":"Adobe","Title":"Adobe","Domain":"adobe.com","BreachDate":"2013-10-04","PwnCount":152445165,"IsVerified":true}]`))
	}))
	defer server.Close()

	client := NewClient(NewClientParams{APIKey: "test-key", BreachURL: server.URL})

	result, err := client.CheckEmail(context.Background(), "pwned@example.com")
	if err != nil {
		t.Fatalf("CheckEmail: %v", err)
	}
	if result.Status != "found" || result.BreachCount != 1 {
		t.Fatalf("result = %+v, want found/1", result)
	}
	if result.Breaches[0].Name != "Adobe" {
		t.Fatalf("breach name = %q", result.Breaches[0].Name)
	}

	result, err = client.CheckEmail(context.Background(), "clean@example.com")
	if err != nil {
		t.Fatalf("CheckEmail: %v", err)
	}
	if result.Status != "safe" {
		t.Fatalf("result = %+v, want safe", result)
	}
}

func TestCheckEmailDemoMode(t *testing.T) {
	client := NewClient(NewClientParams{})

	result, err := client.CheckEmail(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("CheckEmail: %v", err)
	}
	if result.Status != "found" || result.BreachCount != 2 {
		t.Fatalf("demo result = %+v, want found/2", result)
	}

	result, err = client.CheckEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("CheckEmail: %v", err)
	}
	if result.Status != "safe" {
		t.Fatalf("demo result = %+v, want safe", result)
	}
}
