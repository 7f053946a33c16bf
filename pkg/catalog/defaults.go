// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

// DemoRequirementsFile returns the document written for new workspaces
// and by `requirements new`. It exercises every step variant.
func DemoRequirementsFile() RequirementsFile {
	return RequirementsFile{Requirements: []Requirement{{
		Name:        "Demo requirement",
		Shortname:   "demo",
		Description: "Describe what this requirement checks and why it matters.",
		Labels:      []string{"demo"},
		Links: []Link{
			{Name: "Documentation", URL: "https://example.com/docs"},
		},
		Steps: []Step{
			{
				Action: Actions{
					Describe("Open a terminal."),
					StdIn{Terminal: 1, Text: "echo hello"},
				},
				Expect: Expects{
					StdOut{Terminal: 1, Text: "hello"},
				},
			},
			{
				Action: Actions{
					StdIn{Terminal: 1, Text: "ls /does-not-exist"},
					URL{Name: "ls manual", URL: "https://man7.org/linux/man-pages/man1/ls.1.html"},
				},
				Expect: Expects{
					StdErr{Terminal: 1, Text: "ls: cannot access '/does-not-exist': No such file or directory"},
					Describe("The command exits with a non-zero status on {permutation.Operating System}."),
				},
			},
		},
	}}}
}

// DemoBuildersFile returns the builders document written for new
// workspaces and by `test-cases new`.
func DemoBuildersFile() BuildersFile {
	return BuildersFile{Builders: []Builder{{
		Name:        "Demo test cases",
		Description: "Runs the demo requirements on every supported platform.",
		Set: SetSteps{
			Include{AllLabels: []string{"demo"}},
			Exclude{AnyNames: []string{"deprecated"}},
		},
		Labels: []string{"demo"},
		Permutations: map[string][]string{
			"Operating System": {"Ubuntu 22.04", "Windows 11", "MacOS 12.0"},
			"RMW":              {"CycloneDDS", "FastRTPS"},
		},
	}}}
}
