/* Copyright 2025 Gymsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package prompt reads yes/no confirmations from the terminal
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FormatQuestion appends a choice hint to the question. The capitalized
// choice is the one an empty answer selects.
func FormatQuestion(question string, optimistic bool) string {
	if optimistic {
		return fmt.Sprintf("%s (Y/n)", question)
	}

	return fmt.Sprintf("%s (y/N)", question)
}

// ReadYesNo reads one line from the given reader and reports whether it
// confirms. Only "y" confirms; when optimistic is true an empty answer also
// counts as a yes.
func ReadYesNo(r io.Reader, optimistic bool) (bool, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "y" {
		return true, nil
	}

	return optimistic && answer == "", nil
}
