package store

import (
	"fmt"
	"sort"
	"sync"

	"namada_governance_bot/internal/db/models"
	"namada_governance_bot/internal/db/repositories"

	"go.uber.org/zap"
)

// ProposalStore owns every proposal the bot has seen, the set of proposals it
// has already announced and the subscribers. All reads return copies.
type ProposalStore struct {
	mu          sync.RWMutex
	knownIDs    map[int64]struct{}
	records     map[int64]models.Proposal
	notifiedIDs map[int64]struct{}
	subscribers map[int64]struct{}

	flushMu    sync.Mutex
	repository repositories.StateRepository
	logger     *zap.SugaredLogger
}

func New(repository repositories.StateRepository, logger *zap.SugaredLogger) *ProposalStore {
	return &ProposalStore{
		knownIDs:    make(map[int64]struct{}),
		records:     make(map[int64]models.Proposal),
		notifiedIDs: make(map[int64]struct{}),
		subscribers: make(map[int64]struct{}),
		repository:  repository,
		logger:      logger,
	}
}

// Load builds a store from the persisted state.
func Load(repository repositories.StateRepository, logger *zap.SugaredLogger) (*ProposalStore, error) {
	state, err := repository.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	s := New(repository, logger)
	s.restore(state)

	logger.Infow(
		"state restored",
		"known", len(s.knownIDs),
		"proposals", len(s.records),
		"notified", len(s.notifiedIDs),
		"subscribers", len(s.subscribers),
		"watermark", s.Watermark(),
	)

	return s, nil
}

func (s *ProposalStore) restore(state *models.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range state.KnownIDs {
		s.knownIDs[id] = struct{}{}
	}

	for _, proposal := range state.Proposals {
		s.records[proposal.ID] = proposal
		s.knownIDs[proposal.ID] = struct{}{}
	}

	for _, id := range state.NotifiedIDs {
		if _, ok := s.records[id]; !ok {
			s.logger.Warnw("dropping notified id without a stored proposal", "proposal_id", id)
			continue
		}
		s.notifiedIDs[id] = struct{}{}
	}

	for _, id := range state.Subscribers {
		s.subscribers[id] = struct{}{}
	}
}

// Watermark is the highest proposal id seen so far, or 0.
func (s *ProposalStore) Watermark() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var watermark int64
	for id := range s.knownIDs {
		if id > watermark {
			watermark = id
		}
	}
	return watermark
}

// MergeNew stores proposals that are not known yet and returns their ids.
// A stored proposal is never replaced, even if the node reports different
// content for it later.
func (s *ProposalStore) MergeNew(fetched []models.Proposal) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inserted []int64
	for _, proposal := range fetched {
		if _, ok := s.records[proposal.ID]; ok {
			continue
		}

		s.records[proposal.ID] = proposal
		s.knownIDs[proposal.ID] = struct{}{}
		inserted = append(inserted, proposal.ID)
	}

	return inserted
}

// DueForNotification returns the proposals whose voting starts in epoch and
// that were not announced yet. It does not mark them.
func (s *ProposalStore) DueForNotification(epoch int64) []models.Proposal {
	return s.filter(func(p models.Proposal) bool {
		if p.StartEpoch != epoch {
			return false
		}
		_, notified := s.notifiedIDs[p.ID]
		return !notified
	})
}

func (s *ProposalStore) MarkNotified(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.records[id]; !ok {
			s.logger.Warnw("ignoring notification mark for unknown proposal", "proposal_id", id)
			continue
		}
		s.notifiedIDs[id] = struct{}{}
	}
}

func (s *ProposalStore) ActiveAt(epoch int64) []models.Proposal {
	return s.filter(func(p models.Proposal) bool {
		return p.ActiveAt(epoch)
	})
}

func (s *ProposalStore) FindByID(id int64) (models.Proposal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proposal, ok := s.records[id]
	return proposal, ok
}

// AddSubscriber reports whether the subscriber is new.
func (s *ProposalStore) AddSubscriber(telegramID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[telegramID]; ok {
		return false
	}
	s.subscribers[telegramID] = struct{}{}
	return true
}

func (s *ProposalStore) Subscribers() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedIDs(s.subscribers)
}

func (s *ProposalStore) Snapshot() *models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := &models.State{
		KnownIDs:    sortedIDs(s.knownIDs),
		NotifiedIDs: sortedIDs(s.notifiedIDs),
		Subscribers: sortedIDs(s.subscribers),
		Proposals:   make([]models.Proposal, 0, len(s.records)),
	}

	for _, id := range sortedKeys(s.records) {
		state.Proposals = append(state.Proposals, s.records[id])
	}

	return state
}

// Flush persists the current state. Flushes are serialized so that a newer
// snapshot is never overwritten by an older one.
func (s *ProposalStore) Flush() error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	if err := s.repository.Save(s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func (s *ProposalStore) filter(keep func(models.Proposal) bool) []models.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var proposals []models.Proposal
	for _, id := range sortedKeys(s.records) {
		if proposal := s.records[id]; keep(proposal) {
			proposals = append(proposals, proposal)
		}
	}
	return proposals
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedKeys(records map[int64]models.Proposal) []int64 {
	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
