// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package options holds the ordered choices offered by the report dialog:
// the content policies a reporter can cite and the feedback reasons.
package options

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyList = errors.New("option list is empty")

// Set is the pair of option lists shown by the report dialog.
// Order is display order.
type Set struct {
	Policies []string `yaml:"policies"`
	Feedback []string `yaml:"feedback"`
}

// Default returns the built-in option lists
func Default() Set {
	return Set{
		Policies: []string{
			"Harassment or bullying",
			"Fraud or scam",
			"Spam",
			"Misinformation",
			"Hateful speech",
			"Threats or violence",
			"Self-harm",
			"Graphic content",
			"Dangerous or extremist organizations",
			"Sexual content",
			"Fake account",
			"Child exploitation",
			"Illegal goods and services",
			"Infringement",
		},
		Feedback: []string{
			"I'm not interested in the author",
			"I'm not interested in this topic",
			"I've seen too many posts on this topic",
			"I've seen this post before",
			"This post is old",
			"It's something else",
		},
	}
}

// Load reads a YAML option file. Lists missing from the file keep their
// defaults; an empty path returns the defaults.
//
//	policies:
//	  - Spam
//	feedback:
//	  - This post is old
func Load(path string) (Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read options file: %w", err)
	}

	var file Set
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Set{}, fmt.Errorf("failed to parse options file: %w", err)
	}
	if file.Policies != nil {
		set.Policies = file.Policies
	}
	if file.Feedback != nil {
		set.Feedback = file.Feedback
	}

	if err := set.Validate(); err != nil {
		return Set{}, fmt.Errorf("invalid options file %s: %w", path, err)
	}
	return set, nil
}

// PolicySeparator joins the selected policies into one report category
const PolicySeparator = ", "

// Validate checks both lists are non-empty with no blank or repeated
// entries. Policies may not contain PolicySeparator.
func (s Set) Validate() error {
	if err := validateList(s.Policies); err != nil {
		return fmt.Errorf("policies: %w", err)
	}
	for _, p := range s.Policies {
		if strings.Contains(p, PolicySeparator) {
			return fmt.Errorf("policies: %q contains %q", p, PolicySeparator)
		}
	}
	if err := validateList(s.Feedback); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}
	return nil
}

// HasPolicy reports whether p is one of the configured policies
func (s Set) HasPolicy(p string) bool {
	return contains(s.Policies, p)
}

// HasFeedback reports whether f is one of the configured feedback reasons
func (s Set) HasFeedback(f string) bool {
	return contains(s.Feedback, f)
}

func validateList(list []string) error {
	if len(list) == 0 {
		return ErrEmptyList
	}
	seen := make(map[string]bool, len(list))
	for i, item := range list {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("entry %d is blank", i)
		}
		if seen[item] {
			return fmt.Errorf("duplicate entry %q", item)
		}
		seen[item] = true
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
