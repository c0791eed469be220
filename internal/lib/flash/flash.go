// Package flash carries a one-shot status message across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const CookieName = "flash"

// MaxValueSize bounds the encoded cookie value, leaving room under the
// 4096-byte browser limit for the name and attributes.
const MaxValueSize = 3072

const (
	KindSuccess = "success"
	KindError   = "error"
)

type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`

	// Values the signup form is prefilled with on the next render.
	Email    string `json:"email,omitempty"`
	Activity string `json:"activity,omitempty"`
}

func Success(text string) Message {
	return Message{Kind: KindSuccess, Text: text}
}

func Error(text string) Message {
	return Message{Kind: KindError, Text: text}
}

// Set stores msg for the next request. A message too large for a cookie
// loses its form prefill first, then is cut down to fit.
func Set(w http.ResponseWriter, msg Message) {
	value, err := encode(msg)
	if err != nil {
		return
	}

	if len(value) > MaxValueSize {
		msg.Email, msg.Activity = "", ""
		if value, err = encode(msg); err != nil {
			return
		}
	}

	for len(value) > MaxValueSize {
		runes := []rune(msg.Text)
		msg.Text = string(runes[:len(runes)*3/4])
		if value, err = encode(msg); err != nil {
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	var msg Message
	if err = json.Unmarshal(raw, &msg); err != nil {
		return nil
	}

	if msg.Kind != KindSuccess && msg.Kind != KindError {
		return nil
	}

	return &msg
}

func encode(msg Message) (string, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
