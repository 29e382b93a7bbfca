package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"namada_governance_bot/configs"
	"namada_governance_bot/internal/db/models"
)

const proposalNotFoundOutput = "No proposal found with id"

var (
	epochPattern         = regexp.MustCompile(`\d+`)
	latestProposalIDLine = regexp.MustCompile(`id:\s+(\d+)`)
	fieldSeparator       = regexp.MustCompile(`:\s*`)
)

type nodeService struct {
	runner CommandRunner
	binary string
	rpcURL string
}

type NodeService interface {
	GetCurrentEpoch(ctx context.Context) (int64, error)
	QueryProposals(ctx context.Context, sinceID int64) ([]models.RawProposal, error)
}

func NewNodeService(config configs.Node, runner CommandRunner) NodeService {
	return &nodeService{
		runner: runner,
		binary: config.Binary,
		rpcURL: config.RPCURL,
	}
}

func (s *nodeService) GetCurrentEpoch(ctx context.Context) (int64, error) {
	output, err := s.runner.Run(ctx, s.binary, "epoch", "--node", s.rpcURL)
	if err != nil {
		return 0, &EpochFetchError{Err: err}
	}

	match := epochPattern.FindString(strings.TrimSpace(output))
	if match == "" {
		return 0, &EpochFetchError{Err: fmt.Errorf("no epoch in output %q", output)}
	}

	epoch, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, &EpochFetchError{Err: err}
	}

	return epoch, nil
}

// QueryProposals returns every proposal with an id above sinceID and below
// the latest id reported by the node. Records are returned as printed by
// the node; parsing them is left to the caller.
func (s *nodeService) QueryProposals(ctx context.Context, sinceID int64) ([]models.RawProposal, error) {
	latest, err := s.latestProposalID(ctx)
	if err != nil {
		return nil, err
	}

	var proposals []models.RawProposal
	for id := sinceID + 1; id < latest; id++ {
		output, err := s.runner.Run(ctx, s.binary, "query-proposal", "--proposal-id", strconv.FormatInt(id, 10), "--node", s.rpcURL)
		if err != nil {
			return nil, &QueryError{ProposalID: id, Err: err}
		}

		if strings.Contains(output, proposalNotFoundOutput) {
			continue
		}

		proposals = append(proposals, parseFields(output))
	}

	return proposals, nil
}

func (s *nodeService) latestProposalID(ctx context.Context) (int64, error) {
	output, err := s.runner.Run(ctx, s.binary, "query-proposal", "--node", s.rpcURL)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	match := latestProposalIDLine.FindStringSubmatch(output)
	if match == nil {
		return 0, &QueryError{Err: fmt.Errorf("no proposal id in output %q", output)}
	}

	latest, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	return latest, nil
}

func parseFields(output string) models.RawProposal {
	fields := models.RawProposal{}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if !strings.Contains(line, ":") {
			continue
		}

		parts := fieldSeparator.Split(line, 2)
		value := ""
		if len(parts) == 2 {
			value = strings.TrimSpace(parts[1])
		}
		fields[strings.TrimSpace(parts[0])] = value
	}

	return fields
}
