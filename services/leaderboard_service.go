package services

import (
	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"
)

type LeaderboardService interface {
	GetLeaderboard(params models.LeaderboardParams) ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	userRepo repositories.UserRepository
}

func NewLeaderboardService(userRepo repositories.UserRepository) LeaderboardService {
	return &leaderboardService{userRepo: userRepo}
}

// GetLeaderboard returns users ordered by score with competition ranks:
// tied scores share a rank, and the next distinct score takes its
// 1-based position in the sequence (1,1,3,4,4,4,7 rather than a
// compacted 1,1,2,3,3,3,4).
func (s *leaderboardService) GetLeaderboard(params models.LeaderboardParams) ([]models.LeaderboardEntry, error) {
	order := params.Sort
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return nil, models.ErrInvalidSort
	}

	users, err := s.userRepo.GetRanked(params.Name, order)
	if err != nil {
		return nil, err
	}

	return assignRanks(users), nil
}

func assignRanks(users []models.User) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, len(users))
	for i, user := range users {
		rank := i + 1
		if i > 0 && user.Score == users[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = models.LeaderboardEntry{
			ID:    user.ID,
			Name:  user.Name,
			Score: user.Score,
			Rank:  rank,
		}
	}
	return entries
}
