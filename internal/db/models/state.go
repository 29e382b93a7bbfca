package models

import "time"

type KnownProposal struct {
	tableName struct{} `pg:"known_proposals"`

	ID int64 `json:"id" pg:",pk"`
}

type NotifiedProposal struct {
	tableName struct{} `pg:"notified_proposals"`

	ProposalID int64     `json:"proposal_id" pg:",pk"`
	NotifiedAt time.Time `json:"notified_at" pg:"default:now()"`
}

// State is everything the bot has to keep across restarts. The four
// collections are always saved and loaded together.
type State struct {
	KnownIDs    []int64    `json:"known_ids"`
	Proposals   []Proposal `json:"proposals"`
	NotifiedIDs []int64    `json:"notified_ids"`
	Subscribers []int64    `json:"subscribers"`
}

func (s *State) IsEmpty() bool {
	return len(s.KnownIDs) == 0 && len(s.Proposals) == 0 && len(s.NotifiedIDs) == 0 && len(s.Subscribers) == 0
}
