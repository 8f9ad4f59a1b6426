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

package ui

import "fmt"

// LogoSmall prints the onboard banner to Stdout.
func LogoSmall() {
	fmt.Fprint(Stdout, Cyan)
	fmt.Fprintln(Stdout, `   ___        _                         _ `)
	fmt.Fprintln(Stdout, `  / _ \ _ __ | |__   ___   __ _ _ __ __| |`)
	fmt.Fprintln(Stdout, ` | | | | '_ \| '_ \ / _ \ / _' | '__/ _' |`)
	fmt.Fprintln(Stdout, ` | |_| | | | | |_) | (_) | (_| | | | (_| |`)
	fmt.Fprintln(Stdout, `  \___/|_| |_|_.__/ \___/ \__,_|_|  \__,_|`)
	fmt.Fprint(Stdout, NC)
	fmt.Fprintf(Stdout, "%s         by Cloud Exit (https://cloud-exit.com)%s\n", Dim, NC)
}
