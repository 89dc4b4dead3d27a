package repository

import (
	"scorecard/app_error"
	"sort"
	"sync"
	"time"
)

// MemoryStore is a map-backed Store. Scores are keyed by (player, hole) so a
// second write to the same key replaces the first.
type MemoryStore struct {
	mu               sync.RWMutex
	nextId           int
	tournaments      map[int]*Tournament
	players          map[int]*TournamentPlayer
	scores           map[ScoreKey]*HoleScore
	universalPlayers map[int]*UniversalPlayer
	history          map[int]*PlayerTournamentHistory
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tournaments:      make(map[int]*Tournament),
		players:          make(map[int]*TournamentPlayer),
		scores:           make(map[ScoreKey]*HoleScore),
		universalPlayers: make(map[int]*UniversalPlayer),
		history:          make(map[int]*PlayerTournamentHistory),
	}
}

func (m *MemoryStore) id() int {
	m.nextId++
	return m.nextId
}

func (m *MemoryStore) GetTournamentById(tournamentId int) (*Tournament, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tournament, ok := m.tournaments[tournamentId]
	if !ok {
		return nil, app_error.NotFound("tournament", tournamentId)
	}
	copied := *tournament
	return &copied, nil
}

func (m *MemoryStore) GetTournamentByRoomCode(roomCode string) (*Tournament, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, tournament := range m.tournaments {
		if tournament.RoomCode == roomCode {
			copied := *tournament
			return &copied, nil
		}
	}
	return nil, app_error.NotFound("tournament", roomCode)
}

func (m *MemoryStore) SaveTournament(tournament *Tournament) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tournament.Id == 0 {
		tournament.Id = m.id()
	}
	if tournament.CreatedAt.IsZero() {
		tournament.CreatedAt = time.Now()
	}
	copied := *tournament
	copied.Players = nil
	m.tournaments[tournament.Id] = &copied
	return tournament, nil
}

func (m *MemoryStore) DeleteTournament(tournamentId int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tournaments[tournamentId]; !ok {
		return app_error.NotFound("tournament", tournamentId)
	}
	for playerId, player := range m.players {
		if player.TournamentId != tournamentId {
			continue
		}
		for key := range m.scores {
			if key.PlayerId == playerId {
				delete(m.scores, key)
			}
		}
		delete(m.players, playerId)
	}
	delete(m.tournaments, tournamentId)
	return nil
}

func (m *MemoryStore) GetPlayerById(playerId int) (*TournamentPlayer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	player, ok := m.players[playerId]
	if !ok {
		return nil, app_error.NotFound("player", playerId)
	}
	copied := *player
	return &copied, nil
}

func (m *MemoryStore) GetPlayersForTournament(tournamentId int) ([]*TournamentPlayer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	players := make([]*TournamentPlayer, 0)
	for _, player := range m.players {
		if player.TournamentId == tournamentId {
			copied := *player
			players = append(players, &copied)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Id < players[j].Id })
	return players, nil
}

func (m *MemoryStore) SavePlayer(player *TournamentPlayer) (*TournamentPlayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if player.Id == 0 {
		player.Id = m.id()
	}
	copied := *player
	copied.Scores = nil
	m.players[player.Id] = &copied
	return player, nil
}

func (m *MemoryStore) RelinkUniversalPlayer(sourceId int, targetId int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, player := range m.players {
		if player.UniversalPlayerId != nil && *player.UniversalPlayerId == sourceId {
			target := targetId
			player.UniversalPlayerId = &target
		}
	}
	return nil
}

func (m *MemoryStore) GetScoresForPlayer(playerId int) ([]*HoleScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	scores := make([]*HoleScore, 0)
	for key, score := range m.scores {
		if key.PlayerId == playerId {
			copied := *score
			scores = append(scores, &copied)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Hole < scores[j].Hole })
	return scores, nil
}

func (m *MemoryStore) GetScoresForTournament(tournamentId int) (map[int][]*HoleScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	byPlayer := make(map[int][]*HoleScore)
	for key, score := range m.scores {
		player, ok := m.players[key.PlayerId]
		if !ok || player.TournamentId != tournamentId {
			continue
		}
		copied := *score
		byPlayer[key.PlayerId] = append(byPlayer[key.PlayerId], &copied)
	}
	for _, scores := range byPlayer {
		sort.Slice(scores, func(i, j int) bool { return scores[i].Hole < scores[j].Hole })
	}
	return byPlayer, nil
}

func (m *MemoryStore) UpsertScore(score *HoleScore) (*HoleScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.scores[score.Key()]; ok {
		score.Id = existing.Id
	} else {
		score.Id = m.id()
	}
	score.UpdatedAt = time.Now()
	copied := *score
	m.scores[score.Key()] = &copied
	return score, nil
}

func (m *MemoryStore) GetUniversalPlayerById(universalPlayerId int) (*UniversalPlayer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	player, ok := m.universalPlayers[universalPlayerId]
	if !ok {
		return nil, app_error.NotFound("universal player", universalPlayerId)
	}
	copied := *player
	return &copied, nil
}

func (m *MemoryStore) GetUniversalPlayerByCode(code string) (*UniversalPlayer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, player := range m.universalPlayers {
		if player.UniqueCode == code {
			copied := *player
			return &copied, nil
		}
	}
	return nil, app_error.NotFound("universal player", code)
}

func (m *MemoryStore) SaveUniversalPlayer(player *UniversalPlayer) (*UniversalPlayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if player.Id == 0 {
		player.Id = m.id()
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now()
	}
	copied := *player
	m.universalPlayers[player.Id] = &copied
	return player, nil
}

func (m *MemoryStore) DeleteUniversalPlayer(universalPlayerId int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.universalPlayers[universalPlayerId]; !ok {
		return app_error.NotFound("universal player", universalPlayerId)
	}
	delete(m.universalPlayers, universalPlayerId)
	return nil
}

func (m *MemoryStore) GetHistoryForUniversalPlayer(universalPlayerId int) ([]*PlayerTournamentHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	history := make([]*PlayerTournamentHistory, 0)
	for _, entry := range m.history {
		if entry.UniversalPlayerId == universalPlayerId {
			copied := *entry
			history = append(history, &copied)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		if history[i].CompletedAt.Equal(history[j].CompletedAt) {
			return history[i].Id < history[j].Id
		}
		return history[i].CompletedAt.Before(history[j].CompletedAt)
	})
	return history, nil
}

func (m *MemoryStore) GetHistoryById(historyId int) (*PlayerTournamentHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.history[historyId]
	if !ok {
		return nil, app_error.NotFound("history", historyId)
	}
	copied := *entry
	return &copied, nil
}

func (m *MemoryStore) CreateHistory(history *PlayerTournamentHistory) (*PlayerTournamentHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	history.Id = m.id()
	copied := *history
	m.history[history.Id] = &copied
	return history, nil
}

func (m *MemoryStore) DeleteHistory(historyId int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.history[historyId]; !ok {
		return app_error.NotFound("history", historyId)
	}
	delete(m.history, historyId)
	return nil
}

func (m *MemoryStore) RelinkHistory(sourceId int, targetId int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.history {
		if entry.UniversalPlayerId == sourceId {
			entry.UniversalPlayerId = targetId
		}
	}
	return nil
}
