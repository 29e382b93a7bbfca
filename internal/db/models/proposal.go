package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	rawKeyID         = "Proposal Id"
	rawKeyType       = "Type"
	rawKeyAuthor     = "Author"
	rawKeyContent    = "Content"
	rawKeyStartEpoch = "Start Epoch"
	rawKeyEndEpoch   = "End Epoch"
)

type ProposalContent struct {
	Title      string `json:"title,omitempty"`
	Abstract   string `json:"abstract,omitempty"`
	Authors    string `json:"authors,omitempty"`
	Details    string `json:"details,omitempty"`
	Discussion string `json:"discussions-to,omitempty"`
	License    string `json:"license,omitempty"`
	Motivation string `json:"motivation,omitempty"`
}

// Proposal is a governance proposal as first observed on chain. It is never
// updated after it has been stored.
type Proposal struct {
	tableName struct{} `pg:"proposals"`

	ID         int64           `json:"id" pg:",pk"`
	StartEpoch int64           `json:"start_epoch" pg:",notnull,use_zero"`
	EndEpoch   int64           `json:"end_epoch" pg:",notnull,use_zero"`
	Type       string          `json:"type" pg:",notnull,use_zero"`
	Author     string          `json:"author" pg:",notnull,use_zero"`
	Content    ProposalContent `json:"content" pg:"type:jsonb"`
}

func (p Proposal) ActiveAt(epoch int64) bool {
	return p.StartEpoch <= epoch && epoch <= p.EndEpoch
}

// VotingEndsAt is the epoch at whose start voting is closed.
func (p Proposal) VotingEndsAt() int64 {
	return p.EndEpoch + 1
}

// RawProposal is a proposal as printed by the node, keyed by field label.
type RawProposal map[string]string

func (r RawProposal) Parse() (Proposal, error) {
	id, err := r.integer(rawKeyID)
	if err != nil {
		return Proposal{}, err
	}
	if id <= 0 {
		return Proposal{}, &MalformedRecordError{Field: rawKeyID, Value: r[rawKeyID], Err: fmt.Errorf("id must be positive")}
	}

	start, err := r.integer(rawKeyStartEpoch)
	if err != nil {
		return Proposal{}, err
	}

	end, err := r.integer(rawKeyEndEpoch)
	if err != nil {
		return Proposal{}, err
	}

	if start > end {
		return Proposal{}, &MalformedRecordError{
			Field: rawKeyEndEpoch,
			Value: r[rawKeyEndEpoch],
			Err:   fmt.Errorf("end epoch %d is before start epoch %d", end, start),
		}
	}

	var content ProposalContent
	if err = json.Unmarshal([]byte(r[rawKeyContent]), &content); err != nil {
		return Proposal{}, &MalformedRecordError{Field: rawKeyContent, Value: r[rawKeyContent], Err: err}
	}

	return Proposal{
		ID:         id,
		StartEpoch: start,
		EndEpoch:   end,
		Type:       r[rawKeyType],
		Author:     r[rawKeyAuthor],
		Content:    content,
	}, nil
}

func (r RawProposal) integer(key string) (int64, error) {
	value, ok := r[key]
	if !ok {
		return 0, &MalformedRecordError{Field: key, Err: fmt.Errorf("field is missing")}
	}

	number, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &MalformedRecordError{Field: key, Value: value, Err: err}
	}

	return number, nil
}

type MalformedRecordError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed proposal record: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
