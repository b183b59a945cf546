package analysis

import (
	"errors"
	"fmt"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/apifootball"
)

// ErrorKind distinguishes where in the pipeline a request failed. Callers do
// not branch on it for retry policy; it exists for logging and metrics.
type ErrorKind int

const (
	KindInputFormat ErrorKind = iota
	KindTeamNotFound
	KindFixtureNotFound
	KindProviderCommunication
	KindProviderData
	KindOddsUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindInputFormat:
		return "input_format"
	case KindTeamNotFound:
		return "team_not_found"
	case KindFixtureNotFound:
		return "fixture_not_found"
	case KindProviderCommunication:
		return "provider_communication"
	case KindProviderData:
		return "provider_data"
	case KindOddsUnavailable:
		return "odds_unavailable"
	default:
		return "unknown"
	}
}

// Error is the single failure variant flowing through the pipeline.
// Message is user-facing and rendered verbatim by the formatter; Err keeps
// the underlying cause for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// providerError maps a provider-client failure onto the user-facing taxonomy:
// a payload we could not decode is a data error, everything else (DNS,
// timeout, non-200 status) is a communication error.
func providerError(err error) *Error {
	if errors.Is(err, apifootball.ErrDecode) {
		return &Error{
			Kind:    KindProviderData,
			Message: fmt.Sprintf("Erro interno ao processar dados do jogo: %v", err),
			Err:     err,
		}
	}
	return &Error{
		Kind:    KindProviderCommunication,
		Message: "Erro de comunicação com a API de dados.",
		Err:     err,
	}
}
