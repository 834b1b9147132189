// Copyright 2026 The DISet Verifier Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lts

import (
	"fmt"
	"strings"
)

// ToDOT generates a Graphviz DOT representation of the LTS. End states are
// drawn as double circles.
func (d *Definition) ToDOT() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph \"%s\" {\n", escapeLabel(d.Name)))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [fontname=\"Helvetica\"];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\"];\n\n")

	sb.WriteString("  // States\n")
	for _, s := range d.states {
		shape := "circle"
		if d.IsEndState(s) {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("  %s [label=\"%s\" tooltip=\"%s\" shape=%s];\n",
			s.Name(), s.Name(), escapeLabel(s.term.String()), shape))
	}
	sb.WriteString("\n")

	sb.WriteString("  // Transitions\n")
	for _, s := range d.states {
		for i, t := range s.transitions {
			style := ""
			if t.IsTau() {
				style = " style=dashed"
			}
			sb.WriteString(fmt.Sprintf("  %s -> %s [label=\"%s\"%s];\n",
				s.Name(), s.results[i].Name(), escapeLabel(t.String()), style))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// ToMermaid generates a Mermaid state diagram of the LTS.
func (d *Definition) ToMermaid() string {
	var sb strings.Builder

	sb.WriteString("graph LR\n")

	for _, s := range d.states {
		if d.IsEndState(s) {
			sb.WriteString(fmt.Sprintf("  %s(((%s)))\n", s.Name(), s.Name()))
		} else {
			sb.WriteString(fmt.Sprintf("  %s((%s))\n", s.Name(), s.Name()))
		}
	}

	for _, s := range d.states {
		for i, t := range s.transitions {
			sb.WriteString(fmt.Sprintf("  %s -->|%s| %s\n",
				s.Name(), escapeMermaidLabel(t.String()), s.results[i].Name()))
		}
	}

	return sb.String()
}

// escapeLabel escapes special characters for DOT format.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// escapeMermaidLabel escapes characters Mermaid treats as syntax in edge
// labels.
func escapeMermaidLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "|", "&#124;")
	s = strings.ReplaceAll(s, "{", "&#123;")
	s = strings.ReplaceAll(s, "}", "&#125;")
	return s
}
