package query

import "testing"

func TestMaterialize(t *testing.T) {
	acme := Subject{
		Name:     "Acme",
		Website:  "https://acme.io",
		Location: "Berlin",
		Industry: "Robotics",
		Aliases:  []string{"ACME Inc", "Acme Labs"},
		Domains:  []string{"acme.com", "acme.de"},
	}

	tests := []struct {
		name     string
		template string
		subject  Subject
		want     string
	}{
		{
			name:     "domains list overrides website hostname",
			template: "Search for {name} at {domain}",
			subject:  acme,
			want:     "Search for Acme at acme.com",
		},
		{
			name:     "website hostname used without domains",
			template: "site:{domain} filetype:pdf",
			subject:  Subject{Name: "Acme", Website: "https://acme.io"},
			want:     "site:acme.io filetype:pdf",
		},
		{
			name:     "unknown tokens pass through",
			template: "{unknown_token} {name}",
			subject:  Subject{Name: "Acme"},
			want:     "{unknown_token} Acme",
		},
		{
			name:     "case insensitive replacement of all occurrences",
			template: `"{Name}" OR "{NAME}" OR "{name}"`,
			subject:  Subject{Name: "Acme"},
			want:     `"Acme" OR "Acme" OR "Acme"`,
		},
		{
			name:     "absent fields substitute empty",
			template: "intitle:{name} {location} {industry} {alias}",
			subject:  Subject{Name: "Acme"},
			want:     "intitle:Acme   ",
		},
		{
			name:     "name synonyms resolve to entity name",
			template: "{entity_name} {company} {organization}",
			subject:  Subject{Name: "Acme"},
			want:     "Acme Acme Acme",
		},
		{
			name:     "first alias wins",
			template: `"{name}" OR "{alias}"`,
			subject:  acme,
			want:     `"Acme" OR "ACME Inc"`,
		},
		{
			name:     "no website and no domains yields empty domain",
			template: "site:{domain}",
			subject:  Subject{Name: "Acme"},
			want:     "site:",
		},
		{
			name:     "full placeholder sweep",
			template: "{name} {domain} {website} {location} {industry}",
			subject:  acme,
			want:     "Acme acme.com https://acme.io Berlin Robotics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Materialize(tt.template, tt.subject)
			if got != tt.want {
				t.Fatalf("Materialize(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestSearchURL(t *testing.T) {
	got := SearchURL(`site:acme.com filetype:pdf "confidential"`)
	want := "https://www.google.com/search?q=site%3Aacme.com+filetype%3Apdf+%22confidential%22"
	if got != want {
		t.Fatalf("SearchURL = %q, want %q", got, want)
	}
}

func TestSearchURLWithPage(t *testing.T) {
	if got, want := SearchURLWithPage("acme", 0), "https://www.google.com/search?q=acme"; got != want {
		t.Fatalf("page 0: %q, want %q", got, want)
	}
	got := SearchURLWithPage("acme", 2)
	want := "https://www.google.com/search?q=acme&start=20"
	if got != want {
		t.Fatalf("page 2: %q, want %q", got, want)
	}
}
