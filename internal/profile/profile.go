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

// Package profile defines the onboarding profile collected by the wizard
// and the encoding used to persist it.
package profile

// Field names one value of the profile. The string form is also the key used
// in the persisted encoding.
type Field string

// Profile fields in form order.
const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldCompany  Field = "company"
	FieldIndustry Field = "industry"
	FieldSize     Field = "size"
	FieldTheme    Field = "theme"
	FieldLayout   Field = "layout"
)

// Fields lists every profile field in form order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldIndustry,
	FieldSize,
	FieldTheme,
	FieldLayout,
}

// Profile is the data collected across the onboarding steps. Every value is
// kept as entered; Size is numeric text and Theme is "light" or "dark" once
// validated.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Theme    string `json:"theme"`
	Layout   string `json:"layout"`
}

// Get returns the value of f, or "" for an unknown field.
func (p Profile) Get(f Field) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldEmail:
		return p.Email
	case FieldCompany:
		return p.Company
	case FieldIndustry:
		return p.Industry
	case FieldSize:
		return p.Size
	case FieldTheme:
		return p.Theme
	case FieldLayout:
		return p.Layout
	}
	return ""
}

// Set overwrites the value of f. It reports false for an unknown field.
func (p *Profile) Set(f Field, value string) bool {
	switch f {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldCompany:
		p.Company = value
	case FieldIndustry:
		p.Industry = value
	case FieldSize:
		p.Size = value
	case FieldTheme:
		p.Theme = value
	case FieldLayout:
		p.Layout = value
	default:
		return false
	}
	return true
}
