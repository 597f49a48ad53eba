package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	minScore = math.MinInt
	maxScore = math.MaxInt
)

// BestMove returns the optimal move for the player to move on board.
// X maximizes the utility and O minimizes it. Among equally scored moves the first one
// in row-major order wins, so the result is deterministic.
func BestMove(board entity.Board) (entity.Move, error) {
	if board.IsTerminal() {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	var (
		bestMove entity.Move
		alpha    = minScore
		beta     = maxScore
	)

	if board.NextPlayer() == entity.PlayerX {
		bestScore := minScore
		for _, move := range board.LegalMoves() {
			score := minValue(mustApply(board, move), alpha, beta)
			if score > bestScore {
				bestScore, bestMove = score, move
			}
			alpha = max(alpha, score)
		}

		return bestMove, nil
	}

	bestScore := maxScore
	for _, move := range board.LegalMoves() {
		score := maxValue(mustApply(board, move), alpha, beta)
		if score < bestScore {
			bestScore, bestMove = score, move
		}
		beta = min(beta, score)
	}

	return bestMove, nil
}

// Value returns the game-theoretic value of board under optimal play by both sides.
func Value(board entity.Board) int {
	if board.NextPlayer() == entity.PlayerX {
		return maxValue(board, minScore, maxScore)
	}
	return minValue(board, minScore, maxScore)
}

func maxValue(board entity.Board, alpha, beta int) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	v := minScore
	for _, move := range board.LegalMoves() {
		v = max(v, minValue(mustApply(board, move), alpha, beta))
		alpha = max(alpha, v)
		// beta cut-off
		if beta <= alpha {
			break
		}
	}

	return v
}

func minValue(board entity.Board, alpha, beta int) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	v := maxScore
	for _, move := range board.LegalMoves() {
		v = min(v, maxValue(mustApply(board, move), alpha, beta))
		beta = min(beta, v)
		// alpha cut-off
		if beta <= alpha {
			break
		}
	}

	return v
}

// mustApply is only called with moves taken from board.LegalMoves.
func mustApply(board entity.Board, move entity.Move) entity.Board {
	next, err := board.ApplyMove(move)
	if err != nil {
		panic(err)
	}
	return next
}
