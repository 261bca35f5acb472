package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "non-empty value", input: "my-app", wantErr: false},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple slug", input: "myapp", wantErr: false},
		{name: "hyphenated slug", input: "my-cool-app", wantErr: false},
		{name: "digits allowed", input: "app2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase rejected", input: "MyApp", wantErr: true},
		{name: "spaces rejected", input: "my app", wantErr: true},
		{name: "leading hyphen rejected", input: "-app", wantErr: true},
		{name: "trailing hyphen rejected", input: "app-", wantErr: true},
		{name: "double hyphen rejected", input: "my--app", wantErr: true},
		{name: "underscore rejected", input: "my_app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateScheme(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty keeps template value", input: "", wantErr: false},
		{name: "simple scheme", input: "myapp", wantErr: false},
		{name: "mixed case allowed", input: "MyApp", wantErr: false},
		{name: "plus dot hyphen allowed", input: "my+app.x-1", wantErr: false},
		{name: "leading digit rejected", input: "1app", wantErr: true},
		{name: "colon rejected", input: "myapp://", wantErr: true},
		{name: "underscore rejected", input: "my_app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScheme(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBundleID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty keeps template value", input: "", wantErr: false},
		{name: "two segments", input: "com.myapp", wantErr: false},
		{name: "three segments", input: "com.example.myapp", wantErr: false},
		{name: "hyphens allowed", input: "com.my-org.my-app", wantErr: false},
		{name: "single segment rejected", input: "myapp", wantErr: true},
		{name: "segment starting with digit rejected", input: "com.1app", wantErr: true},
		{name: "underscore rejected", input: "com.my_app", wantErr: true},
		{name: "trailing dot rejected", input: "com.myapp.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBundleID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAndroidPackage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty keeps template value", input: "", wantErr: false},
		{name: "three segments", input: "com.example.myapp", wantErr: false},
		{name: "underscores allowed", input: "com.my_org.my_app", wantErr: false},
		{name: "single segment rejected", input: "myapp", wantErr: true},
		{name: "hyphen rejected", input: "com.my-app", wantErr: true},
		{name: "segment starting with digit rejected", input: "com.example.1app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAndroidPackage(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already a slug", input: "my-app", want: "my-app"},
		{name: "lowercases", input: "MyApp", want: "myapp"},
		{name: "spaces become hyphens", input: "My Cool App", want: "my-cool-app"},
		{name: "underscores become hyphens", input: "my_app", want: "my-app"},
		{name: "strips punctuation", input: "app! (v2)", want: "app-v2"},
		{name: "collapses hyphen runs", input: "my - app", want: "my-app"},
		{name: "trims edge hyphens", input: "-app-", want: "app"},
		{name: "nothing usable", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
