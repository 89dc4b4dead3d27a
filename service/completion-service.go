package service

import (
	"fmt"
	"scorecard/app_error"
	"scorecard/logger"
	"scorecard/metrics"
	"scorecard/repository"
	"scorecard/scoring"
	"scorecard/utils"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CompletionResult struct {
	Saved           []string `json:"saved"`
	Skipped         []string `json:"skipped"`
	AlreadyRecorded []string `json:"already_recorded"`
}

type completionOutcome string

const (
	outcomeSaved           completionOutcome = "saved"
	outcomeSkipped         completionOutcome = "skipped"
	outcomeAlreadyRecorded completionOutcome = "already_recorded"
)

type entryOutcome struct {
	outcome completionOutcome
	label   string
}

// CompletionService turns a final leaderboard into history rows. Every player is
// guarded by a (universal player, tournament) check so the whole run can be repeated.
type CompletionService struct {
	tournaments      *TournamentService
	leaderboard      *LeaderboardService
	handicaps        *HandicapService
	players          repository.PlayerStore
	universalPlayers repository.UniversalPlayerStore
	history          repository.HistoryStore
	events           EventSink
	workers          int
	logger           *logrus.Entry
	now              func() time.Time
}

func NewCompletionService(store repository.Store, tournaments *TournamentService, leaderboard *LeaderboardService, handicaps *HandicapService, events EventSink, workers int) *CompletionService {
	if workers < 1 {
		workers = 1
	}
	return &CompletionService{
		tournaments:      tournaments,
		leaderboard:      leaderboard,
		handicaps:        handicaps,
		players:          store,
		universalPlayers: store,
		history:          store,
		events:           events,
		workers:          workers,
		logger:           logger.WithComponent("completion_reconciler"),
		now:              time.Now,
	}
}

// resolveIdentity prefers the stored link and falls back to the legacy code, persisting
// the link when the code resolves. A nil result means no identity.
func (s *CompletionService) resolveIdentity(player *repository.TournamentPlayer) (*int, error) {
	if player.UniversalPlayerId != nil {
		return player.UniversalPlayerId, nil
	}
	if player.LegacyCode == nil || *player.LegacyCode == "" {
		return nil, nil
	}
	universalPlayer, err := s.universalPlayers.GetUniversalPlayerByCode(*player.LegacyCode)
	if app_error.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	player.UniversalPlayerId = &universalPlayer.Id
	if _, err := s.players.SavePlayer(player); err != nil {
		return nil, err
	}
	return &universalPlayer.Id, nil
}

type pendingEntry struct {
	index             int
	universalPlayerId int
}

func alreadyRecorded(history []*repository.PlayerTournamentHistory, tournamentId int) bool {
	for _, h := range history {
		if h.TournamentId != nil && *h.TournamentId == tournamentId {
			return true
		}
	}
	return false
}

func (s *CompletionService) record(tournament *repository.Tournament, universalPlayerId int, entry *scoring.LeaderboardEntry) (completionOutcome, error) {
	history, err := s.history.GetHistoryForUniversalPlayer(universalPlayerId)
	if err != nil {
		return "", err
	}
	if alreadyRecorded(history, tournament.Id) {
		return outcomeAlreadyRecorded, nil
	}
	if _, err := s.history.CreateHistory(scoring.HistoryFromEntry(entry, universalPlayerId, tournament)); err != nil {
		return "", err
	}
	if _, err := s.handicaps.Recalculate(universalPlayerId); err != nil {
		return "", err
	}
	return outcomeSaved, nil
}

// Complete records every ranked player, then archives the tournament. A failure leaves
// the players already handled recorded; calling Complete again resumes from there.
func (s *CompletionService) Complete(tournamentId int) (*CompletionResult, error) {
	tournament, err := s.tournaments.GetTournament(tournamentId)
	if err != nil {
		return nil, err
	}
	entries, err := s.leaderboard.GetLeaderboard(tournamentId)
	if err != nil {
		return nil, err
	}
	roster, err := s.players.GetPlayersForTournament(tournamentId)
	if err != nil {
		return nil, err
	}
	playersById := make(map[int]*repository.TournamentPlayer, len(roster))
	for _, player := range roster {
		playersById[player.Id] = player
	}

	closedAt := s.now()
	if tournament.CompletedAt != nil {
		closedAt = *tournament.CompletedAt
	}
	closing := *tournament
	closing.CompletedAt = &closedAt

	outcomes := make([]entryOutcome, len(entries))
	pending := make([]pendingEntry, 0, len(entries))
	for i, entry := range entries {
		player, ok := playersById[entry.PlayerId]
		if !ok {
			outcomes[i] = entryOutcome{outcomeSkipped, fmt.Sprintf("%s (player no longer exists)", entry.PlayerName)}
			continue
		}
		if entry.HolesCompleted == 0 {
			outcomes[i] = entryOutcome{outcomeSkipped, fmt.Sprintf("%s (no holes completed)", entry.PlayerName)}
			continue
		}
		universalPlayerId, err := s.resolveIdentity(player)
		if err != nil {
			return nil, err
		}
		if universalPlayerId == nil {
			outcomes[i] = entryOutcome{outcomeSkipped, fmt.Sprintf("%s (no universal player)", entry.PlayerName)}
			continue
		}
		pending = append(pending, pendingEntry{index: i, universalPlayerId: *universalPlayerId})
	}
	groups := utils.GroupBy(pending, func(p pendingEntry) int { return p.universalPlayerId })

	// Distinct identities run in parallel. Entries sharing one identity stay sequential
	// so each idempotency check sees the previous write.
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for universalPlayerId, group := range groups {
		g.Go(func() error {
			for _, p := range group {
				i := p.index
				outcome, err := s.record(&closing, universalPlayerId, entries[i])
				if err != nil {
					return fmt.Errorf("recording %s: %w", entries[i].PlayerName, err)
				}
				mu.Lock()
				outcomes[i] = entryOutcome{outcome, entries[i].PlayerName}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("tournament_id", tournamentId).Error("completion interrupted")
		return nil, err
	}

	result := &CompletionResult{Saved: []string{}, Skipped: []string{}, AlreadyRecorded: []string{}}
	for _, o := range outcomes {
		switch o.outcome {
		case outcomeSaved:
			result.Saved = append(result.Saved, o.label)
		case outcomeSkipped:
			result.Skipped = append(result.Skipped, o.label)
		case outcomeAlreadyRecorded:
			result.AlreadyRecorded = append(result.AlreadyRecorded, o.label)
		}
		metrics.CompletionOutcomesTotal.WithLabelValues(string(o.outcome)).Inc()
	}

	if _, err := s.tournaments.Archive(tournamentId, closedAt); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"tournament_id":    tournamentId,
		"saved":            len(result.Saved),
		"skipped":          len(result.Skipped),
		"already_recorded": len(result.AlreadyRecorded),
	}).Info("tournament completed")
	publish(s.events, s.logger, TournamentEvent{
		Name:         TournamentCompleted,
		TournamentId: tournament.Id,
		RoomCode:     tournament.RoomCode,
		OccurredAt:   closedAt,
		Payload: map[string]any{
			"saved":            len(result.Saved),
			"skipped":          len(result.Skipped),
			"already_recorded": len(result.AlreadyRecorded),
		},
	})
	return result, nil
}
