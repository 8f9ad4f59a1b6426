// Onboard - Guided Profile Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wizard

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cloud-exit/onboard/internal/profile"
)

// Errors maps a field to the message shown next to it. An empty map means
// the step is valid.
type Errors map[profile.Field]string

// Validation messages.
const (
	MsgName     = "Enter a valid name"
	MsgEmail    = "Invalid email"
	MsgCompany  = "Company name required"
	MsgIndustry = "Industry required"
	MsgSize     = "Enter valid team size"
	MsgTheme    = "Choose light or dark"
	MsgLayout   = "Layout required"
)

// emailPattern is a loose syntactic check, not address validation.
var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// Validate checks the fields collected on step and returns a fresh Errors
// map. Fields of other steps are ignored. An invalid step yields no errors.
func Validate(step Step, p profile.Profile) Errors {
	errs := Errors{}
	switch step {
	case StepPersonal:
		// Length counts characters, so "😀" is too short.
		if strings.TrimSpace(p.Name) == "" || utf8.RuneCountInString(p.Name) < 2 {
			errs[profile.FieldName] = MsgName
		}
		if !emailPattern.MatchString(p.Email) {
			errs[profile.FieldEmail] = MsgEmail
		}
	case StepBusiness:
		if strings.TrimSpace(p.Company) == "" {
			errs[profile.FieldCompany] = MsgCompany
		}
		if strings.TrimSpace(p.Industry) == "" {
			errs[profile.FieldIndustry] = MsgIndustry
		}
		if !validSize(p.Size) {
			errs[profile.FieldSize] = MsgSize
		}
	case StepPreferences:
		switch strings.ToLower(p.Theme) {
		case "light", "dark":
		default:
			errs[profile.FieldTheme] = MsgTheme
		}
		if strings.TrimSpace(p.Layout) == "" {
			errs[profile.FieldLayout] = MsgLayout
		}
	}
	return errs
}

// validSize accepts decimal digit strings whose value is above zero. The
// value is compared without parsing so sizes past int64 still count as
// positive.
func validSize(s string) bool {
	return digitsPattern.MatchString(s) && strings.TrimLeft(s, "0") != ""
}
