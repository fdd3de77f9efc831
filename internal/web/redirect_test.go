package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidReturnPath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		valid bool
	}{
		{"dashboard", "/dashboard", true},
		{"root", "/", true},
		{"select profile", "/selectProfile", true},
		{"view place", "/viewPlace/12", true},
		{"view area with query", "/viewArea/3?x=1", true},
		{"edit item uuid", "/editItem/0b6f7e1a-9a1e-4f6e-8c1a-000000000000", true},
		{"add area under place", "/addArea/7", true},

		{"empty", "", false},
		{"relative", "dashboard", false},
		{"unknown route", "/adminPanel", false},
		{"absolute url", "https://evil.example/dashboard", false},
		{"scheme relative", "//evil.example", false},
		{"backslash", "/dashboard\\evil.example", false},
		{"param route missing id", "/viewPlace/", false},
		{"param route extra segment", "/viewPlace/1/2", false},
		{"logout not a return target", "/logout", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validReturnPath(tt.path))
		})
	}
}
