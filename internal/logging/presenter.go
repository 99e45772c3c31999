// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"

	apperrors "freshmart/cli/internal/errors"
)

// PresentError formats an error for user display with masking.
// Typed errors contribute only their human-friendly message.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(apperrors.MessageOf(err)))
}
