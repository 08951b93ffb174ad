// Package validation provides common validation utilities for the godeadline library.
package validation
