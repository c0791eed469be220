package view

import (
	"errors"
	"fmt"

	"activityBoard/internal/client/activities"
)

const (
	LoadFailedText     = "Failed to load activities. Please try again later."
	NoParticipantsText = "No participants yet"

	SignupFallbackText    = "An error occurred"
	SignupUnavailableText = "Failed to sign up. Please try again."

	UnregisterFallbackText    = "Failed to unregister participant"
	UnregisterUnavailableText = "Failed to unregister participant. Please try again."
)

func ConfirmPrompt(activity, email string) string {
	return fmt.Sprintf("Are you sure you want to unregister %s from %s?", email, activity)
}

// FailureText picks the text shown for a failed mutation: the server's
// detail if it sent one, fallback for other API rejections, unavailable
// when no answer came back.
func FailureText(err error, fallback, unavailable string) string {
	var apiErr *activities.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fallback
	}

	return unavailable
}

func SignupFailureText(err error) string {
	return FailureText(err, SignupFallbackText, SignupUnavailableText)
}

func UnregisterFailureText(err error) string {
	return FailureText(err, UnregisterFallbackText, UnregisterUnavailableText)
}
