package services

import "fmt"

type EpochFetchError struct {
	Err error
}

func (e *EpochFetchError) Error() string {
	return fmt.Sprintf("failed to get current epoch: %v", e.Err)
}

func (e *EpochFetchError) Unwrap() error {
	return e.Err
}

// QueryError is returned when proposals could not be fetched. ProposalID is
// zero when the failure happened before any single proposal was queried.
type QueryError struct {
	ProposalID int64
	Err        error
}

func (e *QueryError) Error() string {
	if e.ProposalID == 0 {
		return fmt.Sprintf("failed to query proposals: %v", e.Err)
	}
	return fmt.Sprintf("failed to query proposal %d: %v", e.ProposalID, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
