package providers

import (
	"context"
	"encoding/json"
	"sync"
)

// scriptedProvider returns queued errors before succeeding with payload.
type scriptedProvider struct {
	mu      sync.Mutex
	errs    []error
	payload json.RawMessage
	calls   map[string]int
}

func newScriptedProvider(payload string, errs ...error) *scriptedProvider {
	return &scriptedProvider{errs: errs, payload: json.RawMessage(payload), calls: map[string]int{}}
}

func (s *scriptedProvider) next(op string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return s.payload, nil
}

func (s *scriptedProvider) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *scriptedProvider) FetchUser(ctx context.Context, username string) (json.RawMessage, error) {
	return s.next(OpUser)
}

func (s *scriptedProvider) FetchUserLeagues(ctx context.Context, userID, sport, season string) (json.RawMessage, error) {
	return s.next(OpUserLeagues)
}

func (s *scriptedProvider) FetchLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return s.next(OpLeague)
}

func (s *scriptedProvider) FetchRosters(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return s.next(OpRosters)
}

func (s *scriptedProvider) FetchUsers(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return s.next(OpUsers)
}

func (s *scriptedProvider) FetchMatchups(ctx context.Context, leagueID string, week int) (json.RawMessage, error) {
	return s.next(OpMatchups)
}

func (s *scriptedProvider) FetchState(ctx context.Context, sport string) (json.RawMessage, error) {
	return s.next(OpState)
}

func (s *scriptedProvider) FetchPlayers(ctx context.Context, sport string) (json.RawMessage, error) {
	return s.next(OpPlayers)
}

var _ DataProvider = (*scriptedProvider)(nil)
