package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vbonduro/stashkeep/internal/domain"
)

const (
	maxNameLen     = 100
	maxDetailsLen  = 200
	minUsernameLen = 5
	maxUsernameLen = 30
	minPasswordLen = 8
	maxPasswordLen = 30
)

// fieldErrors maps form field names to validation messages. Forms re-render
// with these inline and with the submitted values preserved.
type fieldErrors map[string]string

func validateName(field, value string, errs fieldErrors) {
	switch {
	case value == "":
		errs[field] = "required"
	case len(value) > maxNameLen:
		errs[field] = "too long"
	}
}

// nameForm backs the add place/area/container/profile forms.
type nameForm struct {
	Name string
}

func parseNameForm(r *http.Request) nameForm {
	return nameForm{Name: strings.TrimSpace(r.FormValue("name"))}
}

func (f nameForm) validate() fieldErrors {
	errs := fieldErrors{}
	validateName("name", f.Name, errs)
	return errs
}

// itemForm backs the add and edit item forms. Value is kept as the raw
// submitted string so invalid input can be re-rendered verbatim.
type itemForm struct {
	Name         string
	Value        string
	Category     string
	ExtraDetails string
}

func parseItemForm(r *http.Request) itemForm {
	return itemForm{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Value:        strings.TrimSpace(r.FormValue("value")),
		Category:     strings.TrimSpace(r.FormValue("category")),
		ExtraDetails: strings.TrimSpace(r.FormValue("extraDetails")),
	}
}

func itemFormOf(item *domain.Item) itemForm {
	return itemForm{
		Name:         item.Name,
		Value:        strconv.FormatInt(item.Value, 10),
		Category:     item.Category,
		ExtraDetails: item.ExtraDetails,
	}
}

func (f itemForm) validate() (int64, fieldErrors) {
	errs := fieldErrors{}
	validateName("name", f.Name, errs)
	validateName("category", f.Category, errs)
	if len(f.ExtraDetails) > maxDetailsLen {
		errs["extraDetails"] = "too long"
	}

	value, err := strconv.ParseInt(f.Value, 10, 64)
	switch {
	case f.Value == "":
		errs["value"] = "required"
	case err != nil:
		errs["value"] = "must be a whole number"
	case value < 0:
		errs["value"] = "must not be negative"
	}

	return value, errs
}

// lendForm backs the lend item form.
type lendForm struct {
	Name     string
	ToFriend bool
}

func parseLendForm(r *http.Request) lendForm {
	return lendForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		ToFriend: r.FormValue("toFriend") != "",
	}
}

func (f lendForm) validate() fieldErrors {
	errs := fieldErrors{}
	validateName("name", f.Name, errs)
	return errs
}

// signupForm backs the signup page.
type signupForm struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

func parseSignupForm(r *http.Request) signupForm {
	return signupForm{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password1: r.FormValue("password1"),
		Password2: r.FormValue("password2"),
	}
}

func (f signupForm) validate() fieldErrors {
	errs := fieldErrors{}

	if n := len(f.Username); n < minUsernameLen || n > maxUsernameLen {
		errs["username"] = "must be 5-30 characters"
	}
	if f.Email == "" || !strings.Contains(f.Email, "@") {
		errs["email"] = "must be a valid email address"
	}
	if n := len(f.Password1); n < minPasswordLen || n > maxPasswordLen {
		errs["password1"] = "must be 8-30 characters"
	}
	if f.Password1 != f.Password2 {
		errs["password2"] = "passwords do not match"
	}

	return errs
}

// loginForm backs the login page.
type loginForm struct {
	Username string
	Password string
}

func parseLoginForm(r *http.Request) loginForm {
	return loginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
}
